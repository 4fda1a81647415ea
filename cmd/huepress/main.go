// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/huepress-go/internal/cache"
	"github.com/olegiv/huepress-go/internal/config"
	"github.com/olegiv/huepress-go/internal/fetch"
	"github.com/olegiv/huepress-go/internal/handler"
	"github.com/olegiv/huepress-go/internal/logging"
	"github.com/olegiv/huepress-go/internal/middleware"
	"github.com/olegiv/huepress-go/internal/scheduler"
	"github.com/olegiv/huepress-go/internal/seo"
	"github.com/olegiv/huepress-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "HuePress SEO Service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_API_URL       Backend API base URL (default: http://localhost:3001)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_SITE_URL      Public site URL for canonicals (default: https://huepress.com)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_SERVER_PORT   Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_ENV           Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_LOG_LEVEL     Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_REDIS_URL     Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_CACHE_TTL     Entity cache TTL in seconds (default: 3600)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  HUEPRESS_SITEMAP_CRON  Sitemap refresh schedule (default: 0 * * * *)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/olegiv/huepress-go\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("huepress %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	slog.Info("starting huepress", "version", versionInfo.String(), "env", cfg.Env)

	// Entity cache: Redis when configured, in-memory otherwise. Development
	// skips caching entirely so backend edits show up immediately.
	var entityCache cache.Cacher
	if !cfg.IsDevelopment() {
		entityCache, err = cache.New(cache.Options{
			RedisURL:   cfg.RedisURL,
			Prefix:     cfg.CachePrefix,
			DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		})
		if err != nil {
			slog.Warn("cache unavailable, fetching without cache", "error", err)
		} else if cfg.UseRedisCache() {
			slog.Info("entity cache initialized", "backend", "redis")
		} else {
			slog.Info("entity cache initialized", "backend", "memory")
		}
	}
	if entityCache != nil {
		defer func() {
			if err := entityCache.Close(); err != nil {
				slog.Error("error closing cache", "error", err)
			}
		}()
	}

	// Backend fetch client
	client := fetch.NewClient(fetch.Options{
		APIURL:      cfg.APIURL,
		Cache:       entityCache,
		TTL:         time.Duration(cfg.CacheTTL) * time.Second,
		Development: cfg.IsDevelopment(),
		Logger:      logger,
	})

	// Metadata orchestrator
	orchestrator := seo.NewOrchestrator(client, cfg.SiteURL, cfg.SiteName, logger)

	// Sitemap refresh scheduler
	sched := scheduler.New(client, cfg.SiteURL, cfg.SitemapCron, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// HTTP handlers
	seoHandler := handler.NewSEOHandler(orchestrator, sched, cfg.SiteURL, logger)
	keywordsHandler := handler.NewKeywordsHandler()
	healthHandler := handler.NewHealthHandler(cfg.APIURL, versionInfo)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, logger)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(rateLimiter.Middleware())

	seoHandler.Routes(r)
	keywordsHandler.Routes(r)
	healthHandler.Routes(r)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
