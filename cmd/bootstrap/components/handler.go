package components

import (
	"examsched/internal/handler"
	"examsched/internal/handler/api"
	"examsched/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewExamHandler,
		api.NewOccupancyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
