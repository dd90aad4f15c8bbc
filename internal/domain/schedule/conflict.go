package schedule

import "github.com/google/uuid"

// MaxExamsPerScopeDay caps scheduled exams for one program/year on one date.
const MaxExamsPerScopeDay = 2

// Occupation is any time-bound use of a room on a date, whether a fixed
// class session or a scheduled exam.
type Occupation struct {
	RoomID uuid.UUID
	Date   Date
	Slot   Slot
}

// HasConflict reports whether the proposed slot overlaps any existing
// occupation of the same room on the same date.
func HasConflict(occupations []Occupation, roomID uuid.UUID, date Date, proposed Slot) bool {
	for _, o := range occupations {
		if o.RoomID != roomID || !o.Date.Equal(date) {
			continue
		}
		if o.Slot.Overlaps(proposed) {
			return true
		}
	}
	return false
}

// ExceedsCapacity reports whether adding one more exam would break the
// per-scope daily cap, given the count of exams already booked.
func ExceedsCapacity(existing, cap int) bool {
	return existing >= cap
}

// ValidateSlot runs the pure time checks of the validation gate and returns
// every violation found, each attributed to the offending bound. Overlap and
// capacity checks need store access and live in the coordinator.
func ValidateSlot(slot Slot, window Window) Violations {
	var vs Violations
	if !slot.Ordered() {
		vs.Add(FieldStartTime, "start time must be before end time")
		return vs
	}
	windowMsg := "exams must be scheduled between " + window.Start.String() + " and " + window.End.String()
	if slot.Start.Before(window.Start) {
		vs.Add(FieldStartTime, windowMsg)
	}
	if window.End.Before(slot.End) {
		vs.Add(FieldEndTime, windowMsg)
	}
	return vs
}
