package components

import (
	"commission-tracker/internal/infra/readstore"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/infra/uow"
	"commission-tracker/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
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
		// Vendor
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VendorReadQueries)),
		),
		fx.Annotate(
			readstore.NewVendorReadStore,
			fx.As(new(queries.VendorReadStore)),
		),
		// Serial
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SerialReadQueries)),
		),
		fx.Annotate(
			readstore.NewSerialReadStore,
			fx.As(new(queries.SerialReadStore)),
		),
		// Client
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClientReadQueries)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
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
