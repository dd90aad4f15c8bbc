package repository

import (
	"context"
	"hash/fnv"
	"sort"
	"time"

	"examsched/internal/domain/schedule"
	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
)

var dialect = goqu.Dialect("postgres")

const tableExams = "exams"

type ExamRepository struct {
	db db.DBTX
}

func NewExamRepository(dbtx db.DBTX) shared.ExamRepository {
	return &ExamRepository{db: dbtx}
}

func examRecord(exam *schedule.Exam) goqu.Record {
	return goqu.Record{
		"id":                 exam.ID(),
		"program_id":         exam.ProgramID(),
		"year_id":            exam.YearID(),
		"course_id":          exam.CourseID(),
		"professor_id":       exam.ProfessorID(),
		"room_id":            exam.RoomID(),
		"period_id":          exam.PeriodID(),
		"date":               exam.Date().Time(),
		"start_min":          exam.Slot().Start.Minutes(),
		"end_min":            exam.Slot().End.Minutes(),
		"kind":               exam.Kind().String(),
		"external_event_ref": exam.ExternalEventRef(),
		"last_modified_at":   exam.LastModifiedAt(),
		"deleted":            exam.IsDeleted(),
	}
}

func (r *ExamRepository) Insert(ctx context.Context, exam *schedule.Exam) error {
	sql, args, err := dialect.Insert(tableExams).
		Prepared(true).
		Rows(examRecord(exam)).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build exam insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to insert exam", err)
	}
	return nil
}

func (r *ExamRepository) Update(ctx context.Context, exam *schedule.Exam) error {
	rec := examRecord(exam)
	delete(rec, "id")
	delete(rec, "program_id")
	delete(rec, "year_id")

	sql, args, err := dialect.Update(tableExams).
		Prepared(true).
		Set(rec).
		Where(goqu.Ex{"id": exam.ID()}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build exam update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapPgErr("failed to update exam", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("exam not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExamRepository) SetExternalEventRef(ctx context.Context, id uuid.UUID, ref string, now time.Time) error {
	sql, args, err := dialect.Update(tableExams).
		Prepared(true).
		Set(goqu.Record{"external_event_ref": ref, "last_modified_at": now}).
		Where(goqu.Ex{"id": id, "deleted": false}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build event ref update", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to set external event ref", err)
	}
	return nil
}

// LockSchedulingKeys takes transaction-scoped advisory locks on the room/day
// and scope/day keys. Locks are acquired in sorted order so two bookings
// contending for both keys cannot deadlock.
func (r *ExamRepository) LockSchedulingKeys(ctx context.Context, roomID uuid.UUID, programID, yearID uuid.UUID, date schedule.Date) error {
	keys := []int64{
		advisoryKey("room", roomID.String(), date.String()),
		advisoryKey("scope", programID.String(), yearID.String(), date.String()),
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		if _, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
			return infra.WrapRepoErr("failed to acquire scheduling lock", err)
		}
	}
	return nil
}

func advisoryKey(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return int64(h.Sum64()) //nolint:gosec // wraparound is fine for a lock key
}
