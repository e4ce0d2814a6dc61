package components

import (
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/infra/readstore"
	"hotel-ops/internal/infra/uow"
	"hotel-ops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write-side repositories are created per transaction by the
		// UnitOfWork; only the UoW itself is a container citizen.
		uow.NewPostgresUoW,
		// Read-side stores back the query services directly.
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewStockReadStore,
			fx.As(new(queries.StockViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
