package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"zavvi-web/internal/infra/db"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const storageConnectTimeout = 10 * time.Second

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the persistence backend named by STORAGE_BACKEND.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (storage.Store, error) {
	sc := cfg.Storage
	logger = logger.With(slog.String("backend", sc.Backend), slog.String("namespace", sc.Namespace))

	switch strings.ToLower(sc.Backend) {
	case "memory":
		logger.Warn("Using in-memory storage, client state is lost on restart")
		return storage.NewMemoryStore(), nil

	case "file", "":
		st, err := storage.NewFileStore(sc.FilePath)
		if err != nil {
			return nil, errs.Wrapf(err, "open storage file %s", sc.FilePath)
		}
		logger.Info("Storage ready", slog.String("path", sc.FilePath))
		return st, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPassword,
			DB:       sc.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errs.Wrapf(err, "ping redis %s", sc.RedisAddr)
				}
				logger.Info("Storage ready", slog.String("addr", sc.RedisAddr))
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return storage.NewRedisStore(client, sc.KeyPrefix, sc.Namespace), nil

	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
		defer cancel()

		pool, cleanup, err := db.Connect(ctx, sc.PostgresDSN)
		if err != nil {
			return nil, err
		}
		st := storage.NewPostgresStore(pool, sc.Namespace)
		if err := st.Migrate(ctx); err != nil {
			cleanup()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("Storage ready")
		return st, nil

	default:
		return nil, errs.Newf("unknown storage backend %q", sc.Backend)
	}
}
