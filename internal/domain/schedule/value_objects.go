package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrInvalidDateFormat = errors.New("invalid date format")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// TimeOfDay is a wall-clock time with minute precision, independent of date
// and timezone.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// MinutesOfDay reconstructs a TimeOfDay from its storage representation.
func MinutesOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func (t TimeOfDay) Minutes() int            { return t.minutes }
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.minutes > o.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Date is a calendar day without time or timezone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time   { return d.t }
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }
func (d Date) String() string    { return d.t.Format(dateLayout) }

// At combines the date with a wall-clock time into a single timestamp.
func (d Date) At(t TimeOfDay) time.Time {
	return d.t.Add(time.Duration(t.Minutes()) * time.Minute)
}

// Slot is a half-open interval [Start, End) within one day.
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (s Slot) Ordered() bool {
	return s.Start.Before(s.End)
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// slots sharing only a boundary do not overlap.
func (s Slot) Overlaps(o Slot) bool {
	return s.Start.Minutes() < o.End.Minutes() && o.Start.Minutes() < s.End.Minutes()
}

// Window is the daily span within which exams may be scheduled.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// DefaultWindow is the institution-wide scheduling window, 08:00-21:00.
func DefaultWindow() Window {
	return Window{
		Start: TimeOfDay{minutes: 8 * 60},
		End:   TimeOfDay{minutes: 21 * 60},
	}
}

func (w Window) Contains(s Slot) bool {
	return !s.Start.Before(w.Start) && !w.End.Before(s.End)
}
