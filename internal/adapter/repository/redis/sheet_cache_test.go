package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/tbrecon/internal/usecase"
)

func TestSheetCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewSheetCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "202504", []byte("sheet-bytes"), time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "202504")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(val) != "sheet-bytes" {
		t.Fatalf("expected sheet-bytes, got %s", val)
	}
}

func TestSheetCacheMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewSheetCache(client)

	_, err := cache.Get(context.Background(), "209912")
	if !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestSheetCacheExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewSheetCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "202504", []byte("sheet-bytes"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(ctx, "202504"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after expiry, got %v", err)
	}
}

func TestSheetCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewSheetCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "202504", []byte("sheet-bytes"), time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "202504"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "202504"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestSheetCacheKeysArePrefixed(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewSheetCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "202504", []byte("sheet-bytes"), time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !mr.Exists("sheet:202504") {
		t.Fatal("expected key sheet:202504 in redis")
	}
}
