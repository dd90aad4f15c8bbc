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

const tableAuditLog = "audit_log"

// AuditRepository appends immutable snapshots of mutated entities.
type AuditRepository struct {
	db db.DBTX
}

func NewAuditRepository(dbtx db.DBTX) shared.AuditRepository {
	return &AuditRepository{db: dbtx}
}

func (r *AuditRepository) Record(ctx context.Context, action, entity string, entityID uuid.UUID, snapshot []byte) error {
	sql, args, err := dialect.Insert(tableAuditLog).
		Prepared(true).
		Rows(goqu.Record{
			"action":      action,
			"entity":      entity,
			"entity_id":   entityID,
			"snapshot":    snapshot,
			"recorded_at": time.Now().UTC(),
		}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build audit insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to record audit entry", err)
	}
	return nil
}
