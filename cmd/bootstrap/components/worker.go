package components

import (
	"context"

	"examsched/internal/infra/repository"
	"examsched/internal/pkg/clock"
	"examsched/internal/pkg/config"
	"examsched/internal/usecase/shared"
	"examsched/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewExamStore,
		NewDrainer,
	),
	fx.Invoke(StartDrainer),
)

func NewDrainer(
	outbox *repository.OutboxRepository,
	exams worker.ExamStore,
	calendar shared.CalendarClient,
	calendars shared.CalendarConfigs,
	clock clock.Clock,
	cfg config.Config,
) *worker.Drainer {
	return worker.NewDrainer(outbox, exams, calendar, calendars, clock, cfg.Outbox)
}

func StartDrainer(lc fx.Lifecycle, drainer *worker.Drainer) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			drainer.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			drainer.Stop()
			return nil
		},
	})
}
