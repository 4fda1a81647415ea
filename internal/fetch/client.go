// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fetch retrieves entity records from the HuePress backend API.
//
// Every lookup degrades to nil on HTTP errors, network failures, malformed
// JSON or absence from the backend: a missing entity must never break page
// metadata generation, callers fall back to slug-derived defaults instead.
// Failures are reported through the injected logger at Debug level only.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/huepress-go/internal/cache"
	"github.com/olegiv/huepress-go/internal/model"
)

const requestTimeout = 10 * time.Second

// apiEnvelope is the backend response wrapper: {"data": ...}.
type apiEnvelope[T any] struct {
	Data T `json:"data"`
}

// Options configures the fetch client.
type Options struct {
	// APIURL is the backend base URL without a trailing slash.
	APIURL string

	// Cache is the entity cache backend. In production entities are cached
	// for TTL (staleness tolerance: up to one hour of stale SEO data);
	// development always bypasses the cache so edits show up immediately.
	Cache cache.Cacher

	// TTL is the production cache TTL.
	TTL time.Duration

	// Development disables caching entirely.
	Development bool

	// Logger receives fetch diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// HTTPClient overrides the default client (used in tests).
	HTTPClient *http.Client
}

// Client fetches entity records by slug or id from the backend REST API.
type Client struct {
	apiURL string
	http   *http.Client
	dev    bool
	logger *slog.Logger

	categories *cache.TypedCache[[]model.CategoryData]
	themeParks *cache.TypedCache[[]model.ThemeParkData]
	books      *cache.TypedCache[[]model.ColoringBookData]
	pages      *cache.TypedCache[model.ColoringPageData]
}

// NewClient creates a fetch client for the given backend.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = time.Hour
	}

	c := &Client{
		apiURL: opts.APIURL,
		http:   httpClient,
		dev:    opts.Development,
		logger: logger,
	}

	if opts.Cache != nil && !opts.Development {
		c.categories = cache.NewTypedCache[[]model.CategoryData](opts.Cache, ttl)
		c.themeParks = cache.NewTypedCache[[]model.ThemeParkData](opts.Cache, ttl)
		c.books = cache.NewTypedCache[[]model.ColoringBookData](opts.Cache, ttl)
		c.pages = cache.NewTypedCache[model.ColoringPageData](opts.Cache, ttl)
	}

	return c
}

// Category looks up a category by slug. Returns nil if unavailable.
func (c *Client) Category(ctx context.Context, slug string) *model.CategoryData {
	list := c.Categories(ctx)
	for i := range list {
		if list[i].Slug == slug {
			return &list[i]
		}
	}
	c.logger.Debug("category not found", "slug", slug)
	return nil
}

// Categories returns all categories, or nil if the backend is unavailable.
func (c *Client) Categories(ctx context.Context) []model.CategoryData {
	return fetchList(ctx, c, "/api/categories/list", c.categories)
}

// ThemePark looks up a theme park by slug. Returns nil if unavailable.
func (c *Client) ThemePark(ctx context.Context, slug string) *model.ThemeParkData {
	list := c.ThemeParks(ctx)
	for i := range list {
		if list[i].Slug == slug {
			return &list[i]
		}
	}
	c.logger.Debug("theme park not found", "slug", slug)
	return nil
}

// ThemeParks returns all theme parks, or nil if the backend is unavailable.
func (c *Client) ThemeParks(ctx context.Context) []model.ThemeParkData {
	return fetchList(ctx, c, "/api/theme-parks", c.themeParks)
}

// ColoringBook looks up a coloring book by slug. Returns nil if unavailable.
func (c *Client) ColoringBook(ctx context.Context, slug string) *model.ColoringBookData {
	list := c.ColoringBooks(ctx)
	for i := range list {
		if list[i].Slug == slug {
			return &list[i]
		}
	}
	c.logger.Debug("coloring book not found", "slug", slug)
	return nil
}

// ColoringBooks returns all coloring books, or nil if the backend is unavailable.
func (c *Client) ColoringBooks(ctx context.Context) []model.ColoringBookData {
	return fetchList(ctx, c, "/api/coloring-books", c.books)
}

// ColoringPage looks up a coloring page by numeric id (as a string, the form
// ExtractIDFromSlugID produces). Returns nil if unavailable.
func (c *Client) ColoringPage(ctx context.Context, id string) *model.ColoringPageData {
	path := "/api/coloring-pages/" + id

	if c.pages != nil {
		page, err := c.pages.GetOrSet(ctx, path, func() (*model.ColoringPageData, error) {
			return getJSON[model.ColoringPageData](ctx, c, path)
		})
		if err != nil {
			c.logger.Debug("coloring page fetch failed", "id", id, "error", err)
			return nil
		}
		return page
	}

	page, err := getJSON[model.ColoringPageData](ctx, c, path)
	if err != nil {
		c.logger.Debug("coloring page fetch failed", "id", id, "error", err)
		return nil
	}
	return page
}

// fetchList retrieves a full entity list, via the cache in production.
func fetchList[T any](ctx context.Context, c *Client, path string, tc *cache.TypedCache[[]T]) []T {
	if tc != nil {
		list, err := tc.GetOrSet(ctx, path, func() (*[]T, error) {
			return getJSON[[]T](ctx, c, path)
		})
		if err != nil {
			c.logger.Debug("list fetch failed", "path", path, "error", err)
			return nil
		}
		return *list
	}

	list, err := getJSON[[]T](ctx, c, path)
	if err != nil {
		c.logger.Debug("list fetch failed", "path", path, "error", err)
		return nil
	}
	return *list
}

// getJSON performs a GET against the backend and decodes the {"data": ...}
// envelope.
func getJSON[T any](ctx context.Context, c *Client, path string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned status %d for %s", resp.StatusCode, path)
	}

	var envelope apiEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &envelope.Data, nil
}
