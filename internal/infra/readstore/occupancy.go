package readstore

import (
	"context"
	"time"

	"examsched/internal/domain/schedule"
	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// OccupancyReadStore projects the union of fixed class sessions and
// scheduled exams for one date. Pure read model for the calendar UI.
type OccupancyReadStore struct {
	db db.DBTX
}

func NewOccupancyReadStore(dbtx db.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{db: dbtx}
}

func (r *OccupancyReadStore) FindForDate(ctx context.Context, date schedule.Date, roomID *uuid.UUID, excludeExamID *uuid.UUID) ([]*queries.OccupancyItem, error) {
	classFilter := []goqu.Expression{goqu.Ex{"date": date.Time()}}
	examFilter := []goqu.Expression{goqu.Ex{"date": date.Time(), "deleted": false}}

	if roomID != nil {
		classFilter = append(classFilter, goqu.Ex{"room_id": *roomID})
		examFilter = append(examFilter, goqu.Ex{"room_id": *roomID})
	}
	if excludeExamID != nil {
		examFilter = append(examFilter, goqu.C("id").Neq(*excludeExamID))
	}

	classes := dialect.From("class_sessions").
		Select("room_id", "date", "start_min", "end_min").
		Where(classFilter...)
	exams := dialect.From("exams").
		Select("room_id", "date", "start_min", "end_min").
		Where(examFilter...)

	sql, args, err := classes.UnionAll(exams).Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build occupancy select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select occupancy", err)
	}
	defer rows.Close()

	var items []*queries.OccupancyItem
	for rows.Next() {
		var (
			room             uuid.UUID
			day              time.Time
			startMin, endMin int
		)
		if err := rows.Scan(&room, &day, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}

		start, err := schedule.MinutesOfDay(startMin)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt start time in occupancy row", err)
		}
		end, err := schedule.MinutesOfDay(endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt end time in occupancy row", err)
		}

		items = append(items, &queries.OccupancyItem{
			RoomID:    room,
			Date:      schedule.DateOf(day).String(),
			StartTime: start.String(),
			EndTime:   end.String(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupancy rows", err)
	}
	return items, nil
}
