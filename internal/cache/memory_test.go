package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewSimpleMemoryCache(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get() = %q, want %q", got, "value")
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewSimpleMemoryCache(time.Minute)
	defer func() { _ = c.Close() }()

	_, err := c.Get(context.Background(), "absent")
	if err != ErrCacheMiss {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "short"); err != ErrCacheMiss {
		t.Errorf("Get() after expiry: error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewSimpleMemoryCache(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("v"), 0)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	has, err := c.Has(ctx, "key")
	if err != nil {
		t.Fatalf("Has() error = %v", err)
	}
	if has {
		t.Error("Has() = true after Delete, want false")
	}
}

func TestMemoryCacheReturnsCopy(t *testing.T) {
	c := NewSimpleMemoryCache(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("abc"), 0)
	first, _ := c.Get(ctx, "key")
	first[0] = 'x'

	second, _ := c.Get(ctx, "key")
	if string(second) != "abc" {
		t.Errorf("cached value mutated through returned slice: %q", second)
	}
}

func TestMemoryCacheClosed(t *testing.T) {
	c := NewSimpleMemoryCache(time.Minute)
	_ = c.Close()

	if _, err := c.Get(context.Background(), "key"); err != ErrCacheClosed {
		t.Errorf("Get() after Close: error = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(context.Background(), "key", []byte("v"), 0); err != ErrCacheClosed {
		t.Errorf("Set() after Close: error = %v, want ErrCacheClosed", err)
	}
}
