//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"examsched/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()
	date := schedule.NewDate(2026, time.June, 15)
	otherDate := schedule.NewDate(2026, time.June, 16)

	occupations := []schedule.Occupation{
		{RoomID: roomA, Date: date, Slot: slot(t, "09:00", "10:00")},
		{RoomID: roomB, Date: date, Slot: slot(t, "11:00", "12:00")},
	}

	t.Run("overlapping slot in same room conflicts", func(t *testing.T) {
		assert.True(t, schedule.HasConflict(occupations, roomA, date, slot(t, "09:30", "10:30")))
	})

	t.Run("back to back slot does not conflict", func(t *testing.T) {
		assert.False(t, schedule.HasConflict(occupations, roomA, date, slot(t, "10:00", "11:00")))
	})

	t.Run("other room is independent", func(t *testing.T) {
		assert.False(t, schedule.HasConflict(occupations, roomB, date, slot(t, "09:00", "10:00")))
	})

	t.Run("other date is independent", func(t *testing.T) {
		assert.False(t, schedule.HasConflict(occupations, roomA, otherDate, slot(t, "09:00", "10:00")))
	})
}

func TestExceedsCapacity(t *testing.T) {
	assert.False(t, schedule.ExceedsCapacity(0, schedule.MaxExamsPerScopeDay))
	assert.False(t, schedule.ExceedsCapacity(1, schedule.MaxExamsPerScopeDay))
	assert.True(t, schedule.ExceedsCapacity(2, schedule.MaxExamsPerScopeDay))
	assert.True(t, schedule.ExceedsCapacity(3, schedule.MaxExamsPerScopeDay))
}

func TestValidateSlot(t *testing.T) {
	window := schedule.DefaultWindow()

	t.Run("slot inside window passes", func(t *testing.T) {
		vs := schedule.ValidateSlot(slot(t, "08:00", "21:00"), window)
		assert.False(t, vs.HasAny())
	})

	t.Run("unordered slot reported once", func(t *testing.T) {
		vs := schedule.ValidateSlot(slot(t, "10:00", "09:00"), window)
		assert.Len(t, vs, 1)
		assert.Equal(t, schedule.FieldStartTime, vs[0].Field)
	})

	t.Run("early start is reported against the start field", func(t *testing.T) {
		vs := schedule.ValidateSlot(slot(t, "07:00", "09:00"), window)
		assert.Len(t, vs, 1)
		assert.Equal(t, schedule.FieldStartTime, vs[0].Field)
		assert.Contains(t, vs[0].Message, "08:00")
		assert.Contains(t, vs[0].Message, "21:00")
	})

	t.Run("late end is reported against the end field", func(t *testing.T) {
		vs := schedule.ValidateSlot(slot(t, "20:00", "22:00"), window)
		assert.Len(t, vs, 1)
		assert.Equal(t, schedule.FieldEndTime, vs[0].Field)
	})

	t.Run("slot spilling over both bounds reports both fields", func(t *testing.T) {
		vs := schedule.ValidateSlot(slot(t, "07:00", "22:00"), window)
		assert.Len(t, vs, 2)
		assert.Equal(t, schedule.FieldStartTime, vs[0].Field)
		assert.Equal(t, schedule.FieldEndTime, vs[1].Field)
	})
}

func TestViolationsAccumulate(t *testing.T) {
	var vs schedule.Violations
	assert.False(t, vs.HasAny())

	vs.Add(schedule.FieldRoom, "room does not exist")
	vs.Add(schedule.FieldDate, "capacity reached")

	assert.True(t, vs.HasAny())
	assert.Len(t, vs, 2)
	assert.Contains(t, vs.Error(), "room does not exist")
	assert.Contains(t, vs.Error(), "capacity reached")
}
