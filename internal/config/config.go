// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	APIURL     string `env:"HUEPRESS_API_URL" envDefault:"http://localhost:3001"`
	SiteURL    string `env:"HUEPRESS_SITE_URL" envDefault:"https://huepress.com"`
	SiteName   string `env:"HUEPRESS_SITE_NAME" envDefault:"HuePress"`
	ServerHost string `env:"HUEPRESS_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"HUEPRESS_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"HUEPRESS_ENV" envDefault:"development"`
	LogLevel   string `env:"HUEPRESS_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL    string `env:"HUEPRESS_REDIS_URL"`                          // Optional Redis URL for distributed caching
	CachePrefix string `env:"HUEPRESS_CACHE_PREFIX" envDefault:"huepress:"` // Redis key prefix
	CacheTTL    int    `env:"HUEPRESS_CACHE_TTL" envDefault:"3600"`        // Entity cache TTL in seconds (production only)

	// Rate limiting for the public API
	RateLimit float64 `env:"HUEPRESS_RATE_LIMIT" envDefault:"20"` // Requests per second per client IP
	RateBurst int     `env:"HUEPRESS_RATE_BURST" envDefault:"40"` // Burst size per client IP

	// Sitemap refresh schedule (cron expression)
	SitemapCron string `env:"HUEPRESS_SITEMAP_CRON" envDefault:"0 * * * *"`
}

// IsDevelopment returns true if the application is running in development mode.
// Development disables entity caching and enables verbose fetch diagnostics.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if !strings.HasPrefix(cfg.APIURL, "http://") && !strings.HasPrefix(cfg.APIURL, "https://") {
		return nil, fmt.Errorf("HUEPRESS_API_URL must be an absolute http(s) URL, got %q", cfg.APIURL)
	}

	// Canonical URLs are built by plain concatenation; a trailing slash here
	// would produce double slashes in every canonical.
	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")
	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("HUEPRESS_CACHE_TTL must be positive, got %d", cfg.CacheTTL)
	}

	return cfg, nil
}
