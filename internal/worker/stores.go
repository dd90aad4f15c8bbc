package worker

import (
	"context"
	"time"

	"examsched/internal/domain/schedule"
	"examsched/internal/usecase/shared"

	"github.com/google/uuid"
)

// examStore glues the read side and the write side together for the drainer,
// which runs outside any coordinator transaction.
type examStore struct {
	reads shared.CommandReads
	exams shared.ExamRepository
}

func NewExamStore(reads shared.CommandReads, exams shared.ExamRepository) ExamStore {
	return &examStore{reads: reads, exams: exams}
}

func (s *examStore) ExamByID(ctx context.Context, id uuid.UUID) (*schedule.Exam, error) {
	return s.reads.ExamByID(ctx, id)
}

func (s *examStore) SetExternalEventRef(ctx context.Context, id uuid.UUID, ref string, now time.Time) error {
	return s.exams.SetExternalEventRef(ctx, id, ref, now)
}
