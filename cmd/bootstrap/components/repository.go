package components

import (
	"innbook/internal/infra/cache"
	"innbook/internal/infra/db"
	"innbook/internal/infra/readstore"
	"innbook/internal/infra/uow"
	"innbook/internal/pkg/config"
	"innbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReader)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReader)),
		),
		fx.Annotate(
			NewRoomCache,
			fx.As(new(queries.RoomCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRoomCache(client *redis.Client, cfg config.Config) *cache.RoomCache {
	return cache.NewRoomCache(client, cfg.Cache.RoomListTTL)
}
