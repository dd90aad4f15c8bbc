package calendar

import (
	"context"
	"errors"

	"examsched/internal/infra"
	"examsched/internal/infra/db"
	"examsched/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var dialect = goqu.Dialect("postgres")

// Configs resolves the target calendar for a (program, year, event type)
// scope from the calendar_configs table.
type Configs struct {
	db db.DBTX
}

func NewConfigs(dbtx db.DBTX) *Configs {
	return &Configs{db: dbtx}
}

func (c *Configs) Resolve(ctx context.Context, programID, yearID uuid.UUID, eventType string) (string, error) {
	sql, args, err := dialect.
		Select("calendar_id").
		From("calendar_configs").
		Where(
			goqu.C("program_id").Eq(programID),
			goqu.C("year_id").Eq(yearID),
			goqu.C("event_type").Eq(eventType),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return "", errs.Wrap(err, "failed to build calendar config query")
	}

	var calendarID string
	if err := c.db.QueryRow(ctx, sql, args...).Scan(&calendarID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr(
				"no calendar configured for scope",
				errs.New("missing calendar config"),
				infra.KindNotFound,
			)
		}
		return "", infra.WrapRepoErr("failed to resolve calendar config", err)
	}
	return calendarID, nil
}
