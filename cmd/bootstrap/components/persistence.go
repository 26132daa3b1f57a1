package components

import (
	"canteen-reservation/internal/infra/readstore"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/infra/uow"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the UoW, so only
// the read stores and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Menu
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MenuReadQueries)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
		// Settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingsReadQueries)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(shared.SettingsProvider)),
		),
		// Audit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AuditLogReadQueries)),
		),
		fx.Annotate(
			readstore.NewAuditReadStore,
			fx.As(new(queries.AuditReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
