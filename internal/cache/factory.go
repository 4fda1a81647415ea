// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"time"
)

// Options holds configuration for cache creation.
type Options struct {
	// RedisURL is the Redis connection URL; empty selects the memory backend.
	RedisURL string

	// Prefix is the key prefix for Redis.
	Prefix string

	// DefaultTTL is the default TTL for cache entries.
	DefaultTTL time.Duration
}

// New creates a cache backend based on the provided options:
// Redis when RedisURL is set, in-memory otherwise.
func New(opts Options) (Cacher, error) {
	if opts.DefaultTTL == 0 {
		opts.DefaultTTL = time.Hour
	}

	if opts.RedisURL != "" {
		return NewRedisCache(RedisCacheOptions{
			URL:            opts.RedisURL,
			Prefix:         opts.Prefix,
			DefaultTTL:     opts.DefaultTTL,
			ConnectTimeout: 5 * time.Second,
		})
	}

	return NewSimpleMemoryCache(opts.DefaultTTL), nil
}
