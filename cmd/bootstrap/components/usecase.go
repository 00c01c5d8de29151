package components

import (
	"context"
	"log/slog"

	"zavvi-web/internal/infra/backend"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/clock"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/usecase/cache"
	"zavvi-web/internal/usecase/claim"
	"zavvi-web/internal/usecase/gate"
	"zavvi-web/internal/usecase/listing"
	"zavvi-web/internal/usecase/locationstore"
	"zavvi-web/internal/usecase/session"
	"zavvi-web/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseStoresModule,
	usecaseServicesModule,
	fx.Invoke(
		registerAuthFailureHook,
		registerCacheSweeper,
		registerGate,
		registerClaimDrain,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	cache.New,
)

var usecaseStoresModule = fx.Module("usecase/stores",
	fx.Provide(
		func(st storage.Store, logger *slog.Logger) *locationstore.Store {
			return locationstore.New(context.Background(), st, logger)
		},
		func(api session.AuthAPI, st storage.Store, clk clock.Clock, logger *slog.Logger) *session.Store {
			return session.New(context.Background(), api, st, clk, logger)
		},
	),
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		gate.New,
		func(api listing.API, g *gate.Gate, c *cache.RequestCache, locations *locationstore.Store, clk clock.Clock, logger *slog.Logger) *listing.Service {
			return listing.New(api, g, c, locations, clk, logger)
		},
		func(cfg config.Config, api claim.API, sess *session.Store, c *cache.RequestCache, logger *slog.Logger) *claim.Orchestrator {
			return claim.New(cfg, api, sess, c, logger)
		},
	),
)

// registerAuthFailureHook routes every 401/403 the backend sees through the session.
func registerAuthFailureHook(client *backend.Client, sess *session.Store) {
	client.SetAuthFailureHandler(func(ctx context.Context, status int) {
		sess.HandleAuthFailure(ctx, status, shared.CurrentPath(ctx))
	})
}

func registerCacheSweeper(lc fx.Lifecycle, cfg config.Config, c *cache.RequestCache) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go c.Run(ctx, cfg.Cache.SweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func registerGate(lc fx.Lifecycle, g *gate.Gate) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go g.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

// registerClaimDrain lets in-flight redemption saves finish before shutdown.
func registerClaimDrain(lc fx.Lifecycle, o *claim.Orchestrator, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := o.Drain(ctx); err != nil {
				logger.Warn("Redemption saves still pending at shutdown", slog.String("error", err.Error()))
			}
			return nil
		},
	})
}
