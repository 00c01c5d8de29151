package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"zavvi-web/internal/pkg/errs"
)

// DBTX is the part of pgxpool.Pool the store uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createClientStateTable = `
CREATE TABLE IF NOT EXISTS client_state (
	namespace  TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (namespace, key)
)`

// PostgresStore keeps client state in the client_state table, one row per (namespace, key).
type PostgresStore struct {
	db        DBTX
	namespace string
}

func NewPostgresStore(db DBTX, namespace string) *PostgresStore {
	return &PostgresStore{db: db, namespace: namespace}
}

// Migrate creates the backing table when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createClientStateTable); err != nil {
		return errs.Wrap(err, "create client_state")
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM client_state WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrapf(err, "select %s", key)
	}
	return v, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO client_state (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.namespace, key, value,
	)
	if err != nil {
		return errs.Wrapf(err, "upsert %s", key)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM client_state WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	)
	if err != nil {
		return errs.Wrapf(err, "delete %s", key)
	}
	return nil
}
