package queries

import (
	"context"
	"time"

	"examsched/internal/domain/schedule"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ExamView struct {
	ID               uuid.UUID `json:"id"`
	ProgramID        uuid.UUID `json:"program_id"`
	YearID           uuid.UUID `json:"year_id"`
	CourseID         uuid.UUID `json:"course_id"`
	CourseName       string    `json:"course_name"`
	ProfessorID      uuid.UUID `json:"professor_id"`
	ProfessorName    string    `json:"professor_name"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomCode         string    `json:"room_code"`
	PeriodID         uuid.UUID `json:"period_id"`
	PeriodName       string    `json:"period_name"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Kind             string    `json:"kind"`
	ExternalEventRef *string   `json:"external_event_ref,omitempty"`
	SyncPending      bool      `json:"sync_pending"`
	LastModifiedAt   time.Time `json:"last_modified_at"`
}

type ExamViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExamView, error)
	FindByScope(ctx context.Context, programID, yearID uuid.UUID) ([]*ExamView, error)
}

type ExamQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ExamView, error)
	ListByScope(ctx context.Context, programID, yearID uuid.UUID) ([]*ExamView, error)
}

type examQueriesImpl struct {
	repo ExamViewRepo
}

func NewExamQueries(repo ExamViewRepo) ExamQueries {
	return &examQueriesImpl{repo: repo}
}

func (q *examQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ExamView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *examQueriesImpl) ListByScope(ctx context.Context, programID, yearID uuid.UUID) ([]*ExamView, error) {
	return q.repo.FindByScope(ctx, programID, yearID)
}

// OccupancyItem is one occupied slot, fixed session or exam alike, in the
// wire format the calendar UI consumes.
type OccupancyItem struct {
	RoomID    uuid.UUID `json:"room_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type OccupancyRepo interface {
	FindForDate(ctx context.Context, date schedule.Date, roomID *uuid.UUID, excludeExamID *uuid.UUID) ([]*OccupancyItem, error)
}

type OccupancyQueries interface {
	ListForDate(ctx context.Context, date schedule.Date, roomID *uuid.UUID, excludeExamID *uuid.UUID) ([]*OccupancyItem, error)
}

type occupancyQueriesImpl struct {
	repo OccupancyRepo
}

func NewOccupancyQueries(repo OccupancyRepo) OccupancyQueries {
	return &occupancyQueriesImpl{repo: repo}
}

func (q *occupancyQueriesImpl) ListForDate(ctx context.Context, date schedule.Date, roomID *uuid.UUID, excludeExamID *uuid.UUID) ([]*OccupancyItem, error) {
	return q.repo.FindForDate(ctx, date, roomID, excludeExamID)
}
