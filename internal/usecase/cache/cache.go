package cache

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"zavvi-web/internal/pkg/clock"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch is returned to a caller that joined a load of its key
// started by a loader of a different type.
var ErrTypeMismatch = errors.New("cached value has a different type")

// Loader produces a fresh value for a key.
type Loader[T any] func(ctx context.Context) (T, error)

type entry struct {
	value    any
	storedAt time.Time
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Size     int      `json:"size"`
	InFlight int      `json:"inFlight"`
	Keys     []string `json:"keys"`
}

// RequestCache is a keyed, TTL-bounded memo of loader results. Concurrent
// callers of the same key share one load, failures are never stored, and a
// load that started before an invalidation of its key does not write back.
type RequestCache struct {
	clock      clock.Clock
	logger     *slog.Logger
	defaultTTL time.Duration

	mu         sync.Mutex
	entries    map[string]entry
	generation map[string]uint64
	epoch      uint64
	inFlight   map[string]int
	onCleared  []func()

	group singleflight.Group
}

func New(cfg config.Config, clk clock.Clock, logger *slog.Logger) *RequestCache {
	ttl := cfg.Cache.DefaultTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RequestCache{
		clock:      clk,
		logger:     logger,
		defaultTTL: ttl,
		entries:    make(map[string]entry),
		generation: make(map[string]uint64),
		inFlight:   make(map[string]int),
	}
}

// Get returns the cached value for key if it is younger than ttl, otherwise
// loads it. ttl <= 0 means the default TTL.
func Get[T any](ctx context.Context, c *RequestCache, key string, ttl time.Duration, load Loader[T]) (T, error) {
	if v, ok := lookup[T](c, key, ttl); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		token := c.begin(key)
		defer c.end(key)

		// the load outlives any single caller; each caller still honors its own ctx
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, token, v)
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, ok := res.Val.(T)
		if !ok {
			return zero, errs.Mark(errs.Newf("cache key %q loaded %T, caller wants %T", key, res.Val, zero), ErrTypeMismatch)
		}
		return v, nil
	}
}

// Peek returns the cached value regardless of its age, without loading.
func Peek[T any](c *RequestCache, key string) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}

// Set stores value directly under key.
func Set[T any](c *RequestCache, key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.clock.Now()}
}

// Prefetch warms key in the background. Failures are logged, never surfaced.
func Prefetch[T any](ctx context.Context, c *RequestCache, key string, ttl time.Duration, load Loader[T]) {
	if c.Has(key, ttl) {
		return
	}
	go func() {
		if _, err := Get(context.WithoutCancel(ctx), c, key, ttl, load); err != nil {
			c.logger.Warn("Prefetch failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}()
}

func lookup[T any](c *RequestCache, key string, ttl time.Duration) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !c.fresh(e, ttl) {
		return zero, false
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Has reports whether key holds a value younger than ttl.
func (c *RequestCache) Has(key string, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && c.fresh(e, ttl)
}

func (c *RequestCache) fresh(e entry, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	return clock.Since(c.clock, e.storedAt) < ttl
}

type loadToken struct {
	generation uint64
	epoch      uint64
}

func (c *RequestCache) begin(key string) loadToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight[key]++
	return loadToken{generation: c.generation[key], epoch: c.epoch}
}

func (c *RequestCache) end(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[key]--; c.inFlight[key] <= 0 {
		delete(c.inFlight, key)
	}
}

func (c *RequestCache) store(key string, token loadToken, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token.generation != c.generation[key] || token.epoch != c.epoch {
		return
	}
	c.entries[key] = entry{value: value, storedAt: c.clock.Now()}
}

// Invalidate drops key; an in-flight load of key will not write its result.
func (c *RequestCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked(key)
}

// InvalidatePattern drops every key containing pattern, including keys
// still loading, and returns how many stored entries were removed.
func (c *RequestCache) InvalidatePattern(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			c.dropLocked(key)
			n++
		}
	}
	for key := range c.inFlight {
		if strings.Contains(key, pattern) {
			c.dropLocked(key)
		}
	}
	return n
}

func (c *RequestCache) dropLocked(key string) {
	delete(c.entries, key)
	c.generation[key]++
	c.group.Forget(key)
}

// ClearAll empties the cache and notifies OnCleared subscribers.
func (c *RequestCache) ClearAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.generation = make(map[string]uint64)
	c.epoch++
	for key := range c.inFlight {
		c.group.Forget(key)
	}
	subs := append([]func(){}, c.onCleared...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnCleared registers fn to run after every ClearAll.
func (c *RequestCache) OnCleared(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCleared = append(c.onCleared, fn)
}

// Sweep removes entries older than the default TTL.
func (c *RequestCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for key, e := range c.entries {
		if !c.fresh(e, c.defaultTTL) {
			delete(c.entries, key)
			n++
		}
	}
	return n
}

// Run sweeps on every interval until ctx is done.
func (c *RequestCache) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Sweep(); n > 0 {
				c.logger.Debug("Cache sweep", slog.Int("removed", n))
			}
		}
	}
}

func (c *RequestCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return Stats{Size: len(c.entries), InFlight: len(c.inFlight), Keys: keys}
}
