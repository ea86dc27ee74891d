package checkout

import (
	"context"

	"bytesme-checkout/internal/infra/api"
	"bytesme-checkout/internal/infra/readstore"
	"bytesme-checkout/internal/infra/repository"
	"bytesme-checkout/internal/pkg/clock"
	"bytesme-checkout/internal/pkg/config"
	"bytesme-checkout/internal/usecase/commands"
	"bytesme-checkout/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module wires the whole checkout core for fx-based hosts. The host must
// provide an api.TokenSource (exported here as TokenSource) for the
// backend's bearer auth.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	GatewayModule,
	RepositoryModule,
	UseCaseModule,
	fx.Provide(newClient),
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.APIConfig { return cfg.API },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		func(cfg config.Config) config.StoreConfig { return cfg.Store },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		api.NewClient,
		newRedisClient,
	),
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(commands.VoucherFinder)),
			fx.As(new(queries.VoucherReader)),
		),
		fx.Annotate(
			repository.NewAppliedVoucherRepository,
			fx.As(new(commands.AppliedVoucherRepository)),
		),
		fx.Annotate(
			repository.NewAccountVoucherRepository,
			fx.As(new(commands.VoucherAccountGateway)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderGateway)),
		),
	),
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewCheckoutCommands,
		queries.NewVoucherQueries,
	),
)

func newRedisClient(lc fx.Lifecycle, cfg config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func newClient(cmds commands.CheckoutCommands, qs queries.VoucherQueries) *Client {
	return &Client{
		Checkout: cmds,
		Vouchers: qs,
	}
}
