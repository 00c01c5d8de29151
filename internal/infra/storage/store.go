package storage

import (
	"context"
	"encoding/json"

	"zavvi-web/internal/pkg/errs"
)

// Persisted client-state keys.
const (
	KeyToken              = "token"
	KeyCurrentUser        = "currentUser"
	KeySelectedLocation   = "selectedLocation"
	KeyLocationModalShown = "locationModalShown"
	KeyRedirectAfterLogin = "redirectAfterLogin"
)

// Store is durable string key/value storage for client state.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

const probeKey = "__storage_probe__"

// Probe checks that the store accepts writes.
func Probe(ctx context.Context, s Store) error {
	if err := s.Set(ctx, probeKey, probeKey); err != nil {
		return errs.Mark(errs.Wrap(err, "storage probe write"), errs.ErrStorageUnavailable)
	}
	if err := s.Remove(ctx, probeKey); err != nil {
		return errs.Mark(errs.Wrap(err, "storage probe remove"), errs.ErrStorageUnavailable)
	}
	return nil
}

// GetJSON decodes the value at key into v. A missing key reports false with no error.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errs.Wrapf(err, "decode %s", key)
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errs.Wrapf(err, "encode %s", key)
	}
	return s.Set(ctx, key, string(raw))
}

// RemoveAll removes every key, returning the first failure after trying all of them.
func RemoveAll(ctx context.Context, s Store, keys ...string) error {
	var first error
	for _, k := range keys {
		if err := s.Remove(ctx, k); err != nil && first == nil {
			first = err
		}
	}
	return first
}
