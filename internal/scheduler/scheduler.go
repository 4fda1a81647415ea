// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler periodically rebuilds the sitemap from backend entity
// lists so crawlers always see fresh URLs without per-request fetches.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/huepress-go/internal/model"
	"github.com/olegiv/huepress-go/internal/seo"
)

const refreshTimeout = 30 * time.Second

// Lister supplies the entity lists that feed sitemap URLs.
type Lister interface {
	Categories(ctx context.Context) []model.CategoryData
	ThemeParks(ctx context.Context) []model.ThemeParkData
	ColoringBooks(ctx context.Context) []model.ColoringBookData
}

// Scheduler rebuilds the sitemap on a cron schedule and serves the latest
// snapshot to the HTTP layer.
type Scheduler struct {
	lister  Lister
	siteURL string
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger

	mu      sync.RWMutex
	sitemap []byte
}

// New creates a scheduler that rebuilds the sitemap per the cron spec.
func New(lister Lister, siteURL, spec string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		lister:  lister,
		siteURL: siteURL,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start builds the initial sitemap and begins the refresh schedule.
func (s *Scheduler) Start() error {
	s.Refresh()

	_, err := s.cron.AddFunc(s.spec, s.Refresh)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec, "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Sitemap returns the latest sitemap snapshot. Nil until the first
// successful build. Callers must not modify the returned slice.
func (s *Scheduler) Sitemap() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sitemap
}

// Refresh rebuilds the sitemap from the current backend entity lists.
// An unreachable backend still yields a sitemap with the static verticals.
func (s *Scheduler) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	builder := seo.NewSitemapBuilder(s.siteURL)
	builder.AddHomepage()
	builder.AddVerticals()
	builder.AddCategories(s.lister.Categories(ctx))
	builder.AddThemeParks(s.lister.ThemeParks(ctx))
	builder.AddColoringBooks(s.lister.ColoringBooks(ctx))

	out, err := builder.Build()
	if err != nil {
		s.logger.Error("sitemap build failed", "error", err)
		return
	}

	s.mu.Lock()
	s.sitemap = out
	s.mu.Unlock()

	s.logger.Info("sitemap rebuilt", "urls", builder.Count(), "bytes", len(out))
}
