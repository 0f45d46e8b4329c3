package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a JSON read-through cache over a Store.
type Cache struct {
	store  Store
	ttl    time.Duration
	prefix string
	sf     singleflight.Group

	// epoch is bumped by Invalidate; a load that saw an older epoch is not stored.
	epoch atomic.Uint64
}

// New creates a cache. A zero ttl disables caching: loads always run.
func New(store Store, ttl time.Duration, prefix string) *Cache {
	return &Cache{store: store, ttl: ttl, prefix: prefix}
}

// NewFromConfig builds the configured store and wraps it in a Cache.
func NewFromConfig(cfg Config) (*Cache, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	return New(store, time.Duration(cfg.TTLSeconds)*time.Second, cfg.Prefix), nil
}

// Enabled reports whether values are cached at all.
func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// GetOrLoad fills dest from the cache, or calls load, caches its result and
// fills dest from it. Concurrent misses on the same key share one load.
// Store failures degrade to loading; load failures are returned.
func (c *Cache) GetOrLoad(ctx context.Context, key string, dest any, load func(ctx context.Context) (any, error)) error {
	if !c.Enabled() {
		v, err := load(ctx)
		if err != nil {
			return err
		}
		return copyInto(v, dest)
	}

	fullKey := c.prefix + key

	// Fast path: cached and fresh
	if data, ok, err := c.store.Get(ctx, fullKey); err == nil && ok {
		if err := json.Unmarshal(data, dest); err == nil {
			return nil
		}
	}

	// Slow path: one load per key at a time
	result, err, _ := c.sf.Do(fullKey, func() (interface{}, error) {
		started := c.epoch.Load()
		// Callers share this load, so one caller's cancellation must not fail the rest
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cache value for %s: %w", key, err)
		}
		if c.epoch.Load() == started {
			// A failed write only costs a reload next time
			_ = c.store.Set(ctx, fullKey, data, c.ttl)
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(result.([]byte), dest)
}

// Invalidate removes keys so the next read reloads them. Loads already in
// flight return their result but do not store it.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	c.epoch.Add(1)
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	return c.store.Delete(ctx, full...)
}

// copyInto round-trips v through JSON so uncached reads behave like cached ones.
func copyInto(v any, dest any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
