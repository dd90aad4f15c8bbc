package components

import (
	"examsched/internal/infra/authz"
	"examsched/internal/infra/db"
	"examsched/internal/infra/readstore"
	"examsched/internal/infra/repository"
	"examsched/internal/infra/uow"
	"examsched/internal/usecase/queries"
	"examsched/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Pool-bound stores for code that runs outside a coordinator
		// transaction (queries, drainer, authorizer)
		fx.Annotate(
			readstore.NewCommandReads,
			fx.As(new(shared.CommandReads)),
		),
		fx.Annotate(
			repository.NewExamRepository,
			fx.As(new(shared.ExamRepository)),
		),
		repository.NewOutboxRepository,
		fx.Annotate(
			readstore.NewExamReadStore,
			fx.As(new(queries.ExamViewRepo)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyRepo)),
		),
		fx.Annotate(
			authz.NewProgramAuthorizer,
			fx.As(new(shared.Authorizer)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
