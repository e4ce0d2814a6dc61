package components

import (
	"hotel-ops/internal/handler"
	"hotel-ops/internal/handler/api"
	"hotel-ops/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewMaintenanceHandler,
		api.NewStockHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
