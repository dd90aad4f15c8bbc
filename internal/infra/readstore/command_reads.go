package readstore

import (
	"context"
	"errors"
	"time"

	"examsched/internal/domain/schedule"
	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var dialect = goqu.Dialect("postgres")

// CommandReads serves the validation-gate reads of the coordinator. When
// constructed from a transaction it reads inside that transaction, which is
// what the check-then-act discipline requires.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ExamByID(ctx context.Context, id uuid.UUID) (*schedule.Exam, error) {
	sql, args, err := dialect.From("exams").
		Prepared(true).
		Select("id", "program_id", "year_id", "course_id", "professor_id", "room_id", "period_id",
			"date", "start_min", "end_min", "kind", "external_event_ref", "last_modified_at", "deleted").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exam select", err)
	}

	var (
		examID, programID, yearID, courseID, professorID, roomID, periodID uuid.UUID
		date                                                               time.Time
		startMin, endMin                                                   int
		kind                                                               string
		eventRef                                                           *string
		lastModifiedAt                                                     time.Time
		deleted                                                            bool
	)
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&examID, &programID, &yearID, &courseID, &professorID, &roomID, &periodID,
		&date, &startMin, &endMin, &kind, &eventRef, &lastModifiedAt, &deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("exam not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exam by ID", err)
	}

	start, err := schedule.MinutesOfDay(startMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt start time in exam row", err)
	}
	end, err := schedule.MinutesOfDay(endMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt end time in exam row", err)
	}
	examKind, err := schedule.NewExamKind(kind)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt kind in exam row", err)
	}

	return schedule.ReconstructExam(
		examID,
		schedule.ExamSpec{
			ProgramID:   programID,
			YearID:      yearID,
			CourseID:    courseID,
			ProfessorID: professorID,
			RoomID:      roomID,
			PeriodID:    periodID,
			Date:        schedule.DateOf(date),
			Slot:        schedule.Slot{Start: start, End: end},
			Kind:        examKind,
		},
		eventRef,
		lastModifiedAt,
		deleted,
	), nil
}

func (r *CommandReads) OccupationsFor(ctx context.Context, roomID uuid.UUID, date schedule.Date, excludeExamID *uuid.UUID) ([]schedule.Occupation, error) {
	classes := dialect.From("class_sessions").
		Select("room_id", "date", "start_min", "end_min").
		Where(goqu.Ex{"room_id": roomID, "date": date.Time()})

	examFilter := []goqu.Expression{
		goqu.Ex{"room_id": roomID, "date": date.Time(), "deleted": false},
	}
	if excludeExamID != nil {
		examFilter = append(examFilter, goqu.C("id").Neq(*excludeExamID))
	}
	exams := dialect.From("exams").
		Select("room_id", "date", "start_min", "end_min").
		Where(examFilter...)

	sql, args, err := classes.UnionAll(exams).Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build occupations select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select occupations", err)
	}
	defer rows.Close()

	var occupations []schedule.Occupation
	for rows.Next() {
		var (
			room             uuid.UUID
			day              time.Time
			startMin, endMin int
		)
		if err := rows.Scan(&room, &day, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupation", err)
		}

		start, err := schedule.MinutesOfDay(startMin)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt start time in occupation", err)
		}
		end, err := schedule.MinutesOfDay(endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt end time in occupation", err)
		}

		occupations = append(occupations, schedule.Occupation{
			RoomID: room,
			Date:   schedule.DateOf(day),
			Slot:   schedule.Slot{Start: start, End: end},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupations", err)
	}
	return occupations, nil
}

func (r *CommandReads) CountScopeExams(ctx context.Context, programID, yearID uuid.UUID, date schedule.Date, excludeExamID *uuid.UUID) (int, error) {
	filter := []goqu.Expression{
		goqu.Ex{"program_id": programID, "year_id": yearID, "date": date.Time(), "deleted": false},
	}
	if excludeExamID != nil {
		filter = append(filter, goqu.C("id").Neq(*excludeExamID))
	}

	sql, args, err := dialect.From("exams").
		Prepared(true).
		Select(goqu.COUNT("*")).
		Where(filter...).
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build scope count", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count scope exams", err)
	}
	return count, nil
}

func (r *CommandReads) CourseInScope(ctx context.Context, courseID, programID, yearID uuid.UUID) (string, bool, error) {
	sql, args, err := dialect.From("courses").
		Prepared(true).
		Select("name").
		Where(goqu.Ex{"id": courseID, "program_id": programID, "year_id": yearID}).
		ToSQL()
	if err != nil {
		return "", false, infra.WrapRepoErr("failed to build course select", err)
	}
	return r.scanName(ctx, sql, args, "course")
}

func (r *CommandReads) ProfessorForCourse(ctx context.Context, professorID, courseID uuid.UUID) (string, bool, error) {
	sql, args, err := dialect.From(goqu.T("course_professors").As("cp")).
		Prepared(true).
		Join(goqu.T("professors").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("cp.professor_id")))).
		Select("p.full_name").
		Where(goqu.Ex{"cp.course_id": courseID, "cp.professor_id": professorID}).
		ToSQL()
	if err != nil {
		return "", false, infra.WrapRepoErr("failed to build professor select", err)
	}
	return r.scanName(ctx, sql, args, "professor")
}

func (r *CommandReads) RoomByID(ctx context.Context, roomID uuid.UUID) (string, bool, error) {
	sql, args, err := dialect.From("rooms").
		Prepared(true).
		Select("code").
		Where(goqu.Ex{"id": roomID}).
		ToSQL()
	if err != nil {
		return "", false, infra.WrapRepoErr("failed to build room select", err)
	}
	return r.scanName(ctx, sql, args, "room")
}

func (r *CommandReads) PeriodByID(ctx context.Context, periodID uuid.UUID) (string, bool, error) {
	sql, args, err := dialect.From("exam_periods").
		Prepared(true).
		Select("name").
		Where(goqu.Ex{"id": periodID}).
		ToSQL()
	if err != nil {
		return "", false, infra.WrapRepoErr("failed to build period select", err)
	}
	return r.scanName(ctx, sql, args, "period")
}

func (r *CommandReads) scanName(ctx context.Context, sql string, args []any, what string) (string, bool, error) {
	var name string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to look up "+what, err)
	}
	return name, true, nil
}
