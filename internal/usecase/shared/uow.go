package shared

import (
	"context"
	"time"

	"examsched/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Exams() ExamRepository
	Outbox() OutboxRepository
	Audit() AuditRepository
	Reads() CommandReads
}

type ExamRepository interface {
	Insert(ctx context.Context, exam *schedule.Exam) error
	Update(ctx context.Context, exam *schedule.Exam) error
	SetExternalEventRef(ctx context.Context, id uuid.UUID, ref string, now time.Time) error
	// LockSchedulingKeys serializes concurrent bookings that contend for the
	// same room/day or scope/day before the validation reads run.
	LockSchedulingKeys(ctx context.Context, roomID uuid.UUID, programID, yearID uuid.UUID, date schedule.Date) error
}

type OutboxRepository interface {
	Insert(ctx context.Context, entry OutboxEntry) error
}

type AuditRepository interface {
	Record(ctx context.Context, action, entity string, entityID uuid.UUID, snapshot []byte) error
}

type CommandReads interface {
	ExamByID(ctx context.Context, id uuid.UUID) (*schedule.Exam, error)
	// OccupationsFor returns class sessions plus non-deleted exams for the
	// room and date, excluding excludeExamID when editing.
	OccupationsFor(ctx context.Context, roomID uuid.UUID, date schedule.Date, excludeExamID *uuid.UUID) ([]schedule.Occupation, error)
	CountScopeExams(ctx context.Context, programID, yearID uuid.UUID, date schedule.Date, excludeExamID *uuid.UUID) (int, error)
	CourseInScope(ctx context.Context, courseID, programID, yearID uuid.UUID) (string, bool, error)
	ProfessorForCourse(ctx context.Context, professorID, courseID uuid.UUID) (string, bool, error)
	RoomByID(ctx context.Context, roomID uuid.UUID) (string, bool, error)
	PeriodByID(ctx context.Context, periodID uuid.UUID) (string, bool, error)
}

type OutboxKind string

const (
	OutboxCreate OutboxKind = "Create"
	OutboxUpdate OutboxKind = "Update"
	OutboxDelete OutboxKind = "Delete"
)

// OutboxEntry is a pending external-sync operation. Created by the
// coordinator when an inline sync attempt fails (or is skipped for deletes),
// consumed by the drainer, never deleted once processed.
type OutboxEntry struct {
	ID            uuid.UUID
	ExamID        uuid.UUID
	Kind          OutboxKind
	Payload       []byte
	Processed     bool
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// EventPayload snapshots everything a Create/Update replay needs so the
// drainer never re-reads reference data.
type EventPayload struct {
	ExamID      uuid.UUID `json:"exam_id"`
	ProgramID   uuid.UUID `json:"program_id"`
	YearID      uuid.UUID `json:"year_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventType   string    `json:"event_type"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	EventRef    *string   `json:"event_ref,omitempty"`
}

// DeletePayload carries the stored calendar reference so a Delete replay
// works after the exam row is gone.
type DeletePayload struct {
	CalendarID string `json:"calendar_id"`
	EventRef   string `json:"event_ref"`
}
