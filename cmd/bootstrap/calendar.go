package bootstrap

import (
	"examsched/internal/infra/calendar"
	"examsched/internal/infra/db"
	"examsched/internal/pkg/config"
	"examsched/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *calendar.HTTPClient {
				return calendar.NewHTTPClient(cfg.Calendar)
			},
			fx.As(new(shared.CalendarClient)),
		),
		fx.Annotate(
			func(pool *pgxpool.Pool) *calendar.Configs {
				return calendar.NewConfigs(db.DBTX(pool))
			},
			fx.As(new(shared.CalendarConfigs)),
		),
	),
)
