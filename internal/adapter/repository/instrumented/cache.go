// Package instrumented decorates a cache with Prometheus counters.
package instrumented

import (
	"context"
	"errors"
	"time"

	"github.com/iho/tbrecon/internal/infrastructure/metrics"
	"github.com/iho/tbrecon/internal/usecase"
)

// Cache wraps another usecase.Cache and records hit/miss counts.
type Cache struct {
	inner usecase.Cache
	m     *metrics.Metrics
}

// NewCache creates a new instrumented Cache.
func NewCache(inner usecase.Cache, m *metrics.Metrics) *Cache {
	return &Cache{inner: inner, m: m}
}

// Get retrieves a value by key, counting hits and misses.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.inner.Get(ctx, key)
	switch {
	case err == nil:
		c.m.SheetCacheHits.Inc()
	case errors.Is(err, usecase.ErrCacheMiss):
		c.m.SheetCacheMisses.Inc()
	}
	return data, err
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, key, value, ttl)
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}
