package db

import (
	"context"
	"time"

	"zavvi-web/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a small pool; the client state table sees one writer per process.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, func(), error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database dsn")
	}

	cfg.MaxConns = 4
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "open database")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
