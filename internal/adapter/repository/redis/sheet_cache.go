package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/tbrecon/internal/usecase"
)

// SheetCache implements usecase.Cache using Redis, so multiple service
// instances share one downloaded sheet per month.
type SheetCache struct {
	client *redis.Client
	prefix string
}

// NewSheetCache creates a new SheetCache.
func NewSheetCache(client *redis.Client) *SheetCache {
	return &SheetCache{
		client: client,
		prefix: "sheet:",
	}
}

// Get retrieves a cached sheet by month key.
func (c *SheetCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores a sheet with TTL.
func (c *SheetCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a cached sheet.
func (c *SheetCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
