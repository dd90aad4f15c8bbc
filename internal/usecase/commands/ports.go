package commands

import "github.com/google/uuid"

// Write-side snapshots prevent dependency on read-side query types. The
// reference names are captured during validation and reused to build the
// calendar event and the audit record without a second round of reads.
type referenceSnapshot struct {
	CourseName    string
	ProfessorName string
	RoomName      string
	PeriodName    string
}

// ExamInput carries request values. Date and time fields stay strings so
// format problems surface as field violations alongside the business checks
// instead of failing one at a time.
type ExamInput struct {
	CourseID    uuid.UUID
	ProfessorID uuid.UUID
	RoomID      uuid.UUID
	PeriodID    uuid.UUID
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Kind        string // written | oral
}
