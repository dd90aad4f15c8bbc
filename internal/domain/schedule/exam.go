package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidExamKind = errors.New("invalid exam kind")

type ExamKind string

const (
	KindWritten ExamKind = "written"
	KindOral    ExamKind = "oral"
)

func NewExamKind(s string) (ExamKind, error) {
	switch ExamKind(s) {
	case KindWritten, KindOral:
		return ExamKind(s), nil
	default:
		return "", ErrInvalidExamKind
	}
}

func (k ExamKind) String() string { return string(k) }

// Exam is a scheduled exam occupying a room for a slot on a date, tied to a
// program/year scope. The external event reference is set once calendar sync
// has succeeded; until then the exam is valid but unsynced.
type Exam struct {
	id               uuid.UUID
	programID        uuid.UUID
	yearID           uuid.UUID
	courseID         uuid.UUID
	professorID      uuid.UUID
	roomID           uuid.UUID
	periodID         uuid.UUID
	date             Date
	slot             Slot
	kind             ExamKind
	externalEventRef *string
	lastModifiedAt   time.Time
	deleted          bool
}

type ExamSpec struct {
	ProgramID   uuid.UUID
	YearID      uuid.UUID
	CourseID    uuid.UUID
	ProfessorID uuid.UUID
	RoomID      uuid.UUID
	PeriodID    uuid.UUID
	Date        Date
	Slot        Slot
	Kind        ExamKind
}

// NewExam assumes the spec has passed the validation gate.
func NewExam(spec ExamSpec, now time.Time) *Exam {
	return &Exam{
		id:             uuid.New(),
		programID:      spec.ProgramID,
		yearID:         spec.YearID,
		courseID:       spec.CourseID,
		professorID:    spec.ProfessorID,
		roomID:         spec.RoomID,
		periodID:       spec.PeriodID,
		date:           spec.Date,
		slot:           spec.Slot,
		kind:           spec.Kind,
		lastModifiedAt: now,
	}
}

func ReconstructExam(
	id uuid.UUID,
	spec ExamSpec,
	externalEventRef *string,
	lastModifiedAt time.Time,
	deleted bool,
) *Exam {
	return &Exam{
		id:               id,
		programID:        spec.ProgramID,
		yearID:           spec.YearID,
		courseID:         spec.CourseID,
		professorID:      spec.ProfessorID,
		roomID:           spec.RoomID,
		periodID:         spec.PeriodID,
		date:             spec.Date,
		slot:             spec.Slot,
		kind:             spec.Kind,
		externalEventRef: externalEventRef,
		lastModifiedAt:   lastModifiedAt,
		deleted:          deleted,
	}
}

// Amend applies an edited spec in place. Scope fields (program, year) are
// fixed at creation and not amendable.
func (e *Exam) Amend(spec ExamSpec, now time.Time) {
	e.courseID = spec.CourseID
	e.professorID = spec.ProfessorID
	e.roomID = spec.RoomID
	e.periodID = spec.PeriodID
	e.date = spec.Date
	e.slot = spec.Slot
	e.kind = spec.Kind
	e.lastModifiedAt = now
}

func (e *Exam) SetExternalEventRef(ref string, now time.Time) {
	e.externalEventRef = &ref
	e.lastModifiedAt = now
}

func (e *Exam) MarkDeleted(now time.Time) {
	e.deleted = true
	e.lastModifiedAt = now
}

func (e *Exam) IsSynced() bool {
	return e.externalEventRef != nil
}

func (e *Exam) ID() uuid.UUID             { return e.id }
func (e *Exam) ProgramID() uuid.UUID      { return e.programID }
func (e *Exam) YearID() uuid.UUID         { return e.yearID }
func (e *Exam) CourseID() uuid.UUID       { return e.courseID }
func (e *Exam) ProfessorID() uuid.UUID    { return e.professorID }
func (e *Exam) RoomID() uuid.UUID         { return e.roomID }
func (e *Exam) PeriodID() uuid.UUID       { return e.periodID }
func (e *Exam) Date() Date                { return e.date }
func (e *Exam) Slot() Slot                { return e.slot }
func (e *Exam) Kind() ExamKind            { return e.kind }
func (e *Exam) ExternalEventRef() *string { return e.externalEventRef }
func (e *Exam) LastModifiedAt() time.Time { return e.lastModifiedAt }
func (e *Exam) IsDeleted() bool           { return e.deleted }
