//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"examsched/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func slot(t *testing.T, start, end string) schedule.Slot {
	t.Helper()
	return schedule.Slot{Start: mustTime(t, start), End: mustTime(t, end)}
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and format roundtrip", func(t *testing.T) {
		tod, err := schedule.ParseTimeOfDay("09:05")
		require.NoError(t, err)
		assert.Equal(t, 9*60+5, tod.Minutes())
		assert.Equal(t, "09:05", tod.String())
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, raw := range []string{"", "9", "25:00", "12:61", "noon"} {
			_, err := schedule.ParseTimeOfDay(raw)
			assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay, raw)
		}
	})

	t.Run("bounds on constructor", func(t *testing.T) {
		_, err := schedule.NewTimeOfDay(24, 0)
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

		_, err = schedule.NewTimeOfDay(23, 59)
		assert.NoError(t, err)
	})

	t.Run("minutes storage roundtrip", func(t *testing.T) {
		tod, err := schedule.MinutesOfDay(13*60 + 30)
		require.NoError(t, err)
		assert.Equal(t, "13:30", tod.String())

		_, err = schedule.MinutesOfDay(24 * 60)
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
	})
}

func TestDate(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		d, err := schedule.ParseDate("2026-02-14")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-14", d.String())
		assert.True(t, d.Equal(schedule.NewDate(2026, time.February, 14)))
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, raw := range []string{"", "14.02.2026", "2026-13-01", "yesterday"} {
			_, err := schedule.ParseDate(raw)
			assert.ErrorIs(t, err, schedule.ErrInvalidDateFormat, raw)
		}
	})

	t.Run("combines with wall clock", func(t *testing.T) {
		d := schedule.NewDate(2026, time.March, 2)
		at := d.At(mustTime(t, "10:30"))
		assert.Equal(t, time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC), at)
	})
}

func TestSlotOverlaps(t *testing.T) {
	base := slot(t, "09:00", "10:00")

	cases := []struct {
		name    string
		other   schedule.Slot
		overlap bool
	}{
		{name: "identical slots overlap", other: slot(t, "09:00", "10:00"), overlap: true},
		{name: "mid overlap", other: slot(t, "09:30", "10:30"), overlap: true},
		{name: "contained slot", other: slot(t, "09:15", "09:45"), overlap: true},
		{name: "containing slot", other: slot(t, "08:00", "12:00"), overlap: true},
		{name: "back to back after", other: slot(t, "10:00", "11:00"), overlap: false},
		{name: "back to back before", other: slot(t, "08:00", "09:00"), overlap: false},
		{name: "disjoint", other: slot(t, "12:00", "13:00"), overlap: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlap, tc.other.Overlaps(base))
		})
	}
}

func TestWindowContains(t *testing.T) {
	window := schedule.DefaultWindow()

	cases := []struct {
		name     string
		slot     schedule.Slot
		contains bool
	}{
		{name: "starts at opening", slot: slot(t, "08:00", "09:00"), contains: true},
		{name: "ends at closing", slot: slot(t, "20:00", "21:00"), contains: true},
		{name: "full window", slot: slot(t, "08:00", "21:00"), contains: true},
		{name: "before opening", slot: slot(t, "07:59", "09:00"), contains: false},
		{name: "past closing", slot: slot(t, "20:30", "21:01"), contains: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contains, window.Contains(tc.slot))
		})
	}
}
