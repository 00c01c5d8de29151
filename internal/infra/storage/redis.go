package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"zavvi-web/internal/pkg/errs"
)

// RedisStore namespaces keys as {prefix}:{namespace}:{key}.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

func NewRedisStore(client redis.Cmdable, prefix, namespace string) *RedisStore {
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = "zavvi:state"
	}
	if ns := strings.TrimSpace(namespace); ns != "" {
		p += ":" + ns
	}
	return &RedisStore{client: client, prefix: p}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + ":" + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errs.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errs.Wrapf(err, "redis del %s", key)
	}
	return nil
}
