package readstore

import (
	"context"
	"errors"
	"time"

	"examsched/internal/domain/schedule"
	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ExamReadStore struct {
	db db.DBTX
}

func NewExamReadStore(dbtx db.DBTX) *ExamReadStore {
	return &ExamReadStore{db: dbtx}
}

func examViewSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T("exams").As("e")).
		Join(goqu.T("courses").As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("e.course_id")))).
		Join(goqu.T("professors").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("e.professor_id")))).
		Join(goqu.T("rooms").As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("e.room_id")))).
		Join(goqu.T("exam_periods").As("ep"), goqu.On(goqu.I("ep.id").Eq(goqu.I("e.period_id")))).
		Select(
			"e.id", "e.program_id", "e.year_id",
			"e.course_id", "c.name",
			"e.professor_id", "p.full_name",
			"e.room_id", "r.code",
			"e.period_id", "ep.name",
			"e.date", "e.start_min", "e.end_min", "e.kind",
			"e.external_event_ref", "e.last_modified_at",
			goqu.L("EXISTS (SELECT 1 FROM outbox_events o WHERE o.exam_id = e.id AND NOT o.processed)"),
		).
		Where(goqu.Ex{"e.deleted": false})
}

type examViewScanner interface {
	Scan(dest ...any) error
}

func scanExamView(row examViewScanner) (*queries.ExamView, error) {
	var (
		v                view
		date             time.Time
		startMin, endMin int
	)
	if err := row.Scan(
		&v.id, &v.programID, &v.yearID,
		&v.courseID, &v.courseName,
		&v.professorID, &v.professorName,
		&v.roomID, &v.roomCode,
		&v.periodID, &v.periodName,
		&date, &startMin, &endMin, &v.kind,
		&v.eventRef, &v.lastModifiedAt,
		&v.syncPending,
	); err != nil {
		return nil, err
	}

	start, err := schedule.MinutesOfDay(startMin)
	if err != nil {
		return nil, err
	}
	end, err := schedule.MinutesOfDay(endMin)
	if err != nil {
		return nil, err
	}

	return &queries.ExamView{
		ID:               v.id,
		ProgramID:        v.programID,
		YearID:           v.yearID,
		CourseID:         v.courseID,
		CourseName:       v.courseName,
		ProfessorID:      v.professorID,
		ProfessorName:    v.professorName,
		RoomID:           v.roomID,
		RoomCode:         v.roomCode,
		PeriodID:         v.periodID,
		PeriodName:       v.periodName,
		Date:             schedule.DateOf(date).String(),
		StartTime:        start.String(),
		EndTime:          end.String(),
		Kind:             v.kind,
		ExternalEventRef: v.eventRef,
		SyncPending:      v.syncPending,
		LastModifiedAt:   v.lastModifiedAt,
	}, nil
}

type view struct {
	id, programID, yearID                        uuid.UUID
	courseID, professorID, roomID, periodID      uuid.UUID
	courseName, professorName, roomCode          string
	periodName, kind                             string
	eventRef                                     *string
	lastModifiedAt                               time.Time
	syncPending                                  bool
}

func (r *ExamReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExamView, error) {
	sql, args, err := examViewSelect().
		Prepared(true).
		Where(goqu.Ex{"e.id": id}).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exam view select", err)
	}

	v, err := scanExamView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("exam not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exam view by ID", err)
	}
	return v, nil
}

func (r *ExamReadStore) FindByScope(ctx context.Context, programID, yearID uuid.UUID) ([]*queries.ExamView, error) {
	sql, args, err := examViewSelect().
		Prepared(true).
		Where(goqu.Ex{"e.program_id": programID, "e.year_id": yearID}).
		Order(goqu.I("e.date").Asc(), goqu.I("e.start_min").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exam list select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exams by scope", err)
	}
	defer rows.Close()

	var result []*queries.ExamView
	for rows.Next() {
		v, err := scanExamView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan exam view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read exam views", err)
	}
	return result, nil
}
