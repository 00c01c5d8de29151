//go:build e2e

package storage_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"zavvi-web/internal/infra/db"
	"zavvi-web/internal/infra/storage"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "test"
)

func startGenericContainer(t *testing.T, req testcontainers.ContainerRequest) testcontainers.Container {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })
	return c
}

func hostPort(t *testing.T, c testcontainers.Container, port nat.Port) (string, string) {
	t.Helper()
	ctx := context.Background()
	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, port)
	require.NoError(t, err)
	return host, mapped.Port()
}

func TestRedisStore(t *testing.T) {
	c := startGenericContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	})
	host, port := hostPort(t, c, "6379/tcp")

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port})
	t.Cleanup(func() { _ = client.Close() })

	n := 0
	suite.Run(t, &storeContract{newStore: func() storage.Store {
		n++
		return storage.NewRedisStore(client, "zavvi:e2e", fmt.Sprintf("ns%d", n))
	}})
}

func TestPostgresStore(t *testing.T) {
	c := startGenericContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
				testUser, testPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	})
	host, port := hostPort(t, c, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port)
	pool, cleanup, err := db.Connect(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	n := 0
	suite.Run(t, &storeContract{newStore: func() storage.Store {
		n++
		st := storage.NewPostgresStore(pool, fmt.Sprintf("ns%d", n))
		require.NoError(t, st.Migrate(context.Background()))
		return st
	}})
}
