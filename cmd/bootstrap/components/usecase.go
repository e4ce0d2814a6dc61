package components

import (
	"hotel-ops/internal/domain/reservation"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/config"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	func(cfg config.Config) config.StockConfig {
		return cfg.Stock
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewMaintenanceCommands,
		commands.NewRoomCommands,
		commands.NewStockCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewStockQueries,
	),
)
