package repository

import (
	"context"
	"time"

	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const tableOutbox = "outbox_events"

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry shared.OutboxEntry) error {
	sql, args, err := dialect.Insert(tableOutbox).
		Prepared(true).
		Rows(goqu.Record{
			"id":              entry.ID,
			"exam_id":         entry.ExamID,
			"kind":            string(entry.Kind),
			"payload":         entry.Payload,
			"processed":       entry.Processed,
			"attempts":        entry.Attempts,
			"next_attempt_at": entry.NextAttemptAt,
			"created_at":      entry.CreatedAt,
		}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build outbox insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to insert outbox entry", err)
	}
	return nil
}

// SelectDue returns unprocessed entries whose next attempt is due, oldest
// first, limited to batch size.
func (r *OutboxRepository) SelectDue(ctx context.Context, limit int, now time.Time) ([]shared.OutboxEntry, error) {
	sql, args, err := dialect.From(tableOutbox).
		Prepared(true).
		Select("id", "exam_id", "kind", "payload", "processed", "attempts", "next_attempt_at", "created_at", "processed_at").
		Where(goqu.Ex{"processed": false}, goqu.C("next_attempt_at").Lte(now)).
		Order(goqu.C("created_at").Asc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build outbox select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select due outbox entries", err)
	}
	defer rows.Close()

	var entries []shared.OutboxEntry
	for rows.Next() {
		var e shared.OutboxEntry
		var kind string
		if err := rows.Scan(&e.ID, &e.ExamID, &kind, &e.Payload, &e.Processed, &e.Attempts, &e.NextAttemptAt, &e.CreatedAt, &e.ProcessedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox entry", err)
		}
		e.Kind = shared.OutboxKind(kind)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read outbox entries", err)
	}
	return entries, nil
}

func (r *OutboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID, now time.Time) error {
	sql, args, err := dialect.Update(tableOutbox).
		Prepared(true).
		Set(goqu.Record{"processed": true, "processed_at": now}).
		Where(goqu.Ex{"id": id, "processed": false}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build outbox mark", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to mark outbox entry processed", err)
	}
	return nil
}

// RecordFailure leaves the entry unprocessed and schedules the next attempt.
func (r *OutboxRepository) RecordFailure(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time) error {
	sql, args, err := dialect.Update(tableOutbox).
		Prepared(true).
		Set(goqu.Record{
			"attempts":        goqu.L("attempts + 1"),
			"next_attempt_at": nextAttemptAt,
		}).
		Where(goqu.Ex{"id": id, "processed": false}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build outbox failure update", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to record outbox failure", err)
	}
	return nil
}
