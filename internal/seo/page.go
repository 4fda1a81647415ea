// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"context"
	"log/slog"

	"github.com/olegiv/huepress-go/internal/model"
	"github.com/olegiv/huepress-go/internal/util"
)

// Fetcher is the entity lookup port the orchestrator needs. Every method
// returns nil when the entity is unavailable; that is never an error here.
type Fetcher interface {
	Category(ctx context.Context, slug string) *model.CategoryData
	ColoringPage(ctx context.Context, id string) *model.ColoringPageData
	ThemePark(ctx context.Context, slug string) *model.ThemeParkData
	ColoringBook(ctx context.Context, slug string) *model.ColoringBookData
}

// Request identifies the page whose metadata is being generated.
type Request struct {
	PageType  PageType
	PageLevel PageLevel
	Category  string // category slug parameter
	SlugID    string // compound "some-title-123" parameter for detail pages
	ThemePark string // theme-park slug parameter; falls back to Category
	BaseURL   string // site-relative path for the canonical URL
}

// Orchestrator wires config lookup, conditional entity fetching and
// metadata generation. One instance serves all requests; it holds no
// per-request state.
type Orchestrator struct {
	fetcher  Fetcher
	siteURL  string
	siteName string
	logger   *slog.Logger
}

// NewOrchestrator creates a page SEO orchestrator. Empty siteURL and
// siteName fall back to the production defaults.
func NewOrchestrator(fetcher Fetcher, siteURL, siteName string, logger *slog.Logger) *Orchestrator {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	if siteName == "" {
		siteName = DefaultSiteName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		fetcher:  fetcher,
		siteURL:  siteURL,
		siteName: siteName,
		logger:   logger,
	}
}

// GeneratePage resolves metadata for a page request. The only error is an
// invalid (PageType, PageLevel) pair, which is a misconfiguration the
// caller must propagate. Entity fetch failures degrade to slug-derived
// metadata; a malformed or unknown coloring-page id yields a deliberate
// Not Found metadata object, not an error.
func (o *Orchestrator) GeneratePage(ctx context.Context, req Request) (*Meta, error) {
	cfg, err := Lookup(req.PageType, req.PageLevel)
	if err != nil {
		return nil, err
	}

	gctx := Context{
		CategorySlug: req.Category,
		SlugID:       req.SlugID,
		BaseURL:      req.BaseURL,
		SiteURL:      o.siteURL,
		SiteName:     o.siteName,
	}

	switch cfg.DataSource {
	case SourceCategory:
		if req.Category != "" {
			// The first-coloring-book vertical stores its books on the
			// coloring-book endpoint; the book slug travels in the
			// category parameter.
			if req.PageType == PageTypeFirstColoringBook {
				gctx.ColoringBook = o.fetcher.ColoringBook(ctx, req.Category)
			} else {
				gctx.Category = o.fetcher.Category(ctx, req.Category)
			}
		}

	case SourceColoringPage:
		id, ok := util.ExtractIDFromSlugID(req.SlugID)
		if !ok {
			o.logger.Debug("malformed slug id", "slugId", req.SlugID)
			return o.notFoundMeta(req), nil
		}
		page := o.fetcher.ColoringPage(ctx, id)
		if page == nil {
			return o.notFoundForType(req), nil
		}
		gctx.ColoringPage = page
		if req.Category != "" {
			gctx.Category = o.fetcher.Category(ctx, req.Category)
		}

	case SourceThemePark:
		slug := req.ThemePark
		if slug == "" {
			slug = req.Category
		}
		if slug != "" {
			gctx.ThemePark = o.fetcher.ThemePark(ctx, slug)
		}
	}

	return Generate(cfg, gctx), nil
}

// notFoundMeta is the metadata for a detail page whose slug-id carries no
// numeric id. No fetch is attempted.
func (o *Orchestrator) notFoundMeta(req Request) *Meta {
	return o.buildNotFound("Page Not Found", req)
}

// notFoundForType is the metadata for a detail page whose coloring page the
// backend does not know. Distinct wording from notFoundMeta on purpose; the
// two paths are tracked separately.
func (o *Orchestrator) notFoundForType(req Request) *Meta {
	return o.buildNotFound(capitalizeFirst(string(req.PageType))+" - Page Not Found", req)
}

func (o *Orchestrator) buildNotFound(title string, req Request) *Meta {
	description := "The coloring page you are looking for could not be found. Browse our free printable coloring pages instead."
	canonical := o.siteURL + req.BaseURL

	return &Meta{
		Title:       title,
		Description: description,
		Keywords:    "coloring pages, free coloring pages",
		Canonical:   canonical,
		Robots:      "noindex,follow",
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			Type:        "website",
			SiteName:    o.siteName,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
		},
	}
}

// typePaths maps page types to their URL path segments.
var typePaths = map[PageType]string{
	PageTypeCategories:        "categories",
	PageTypeSearch:            "search",
	PageTypePopular:           "popular",
	PageTypeThemeParks:        "theme-parks",
	PageTypeLatest:            "latest",
	PageTypeFirstColoringBook: "first-coloring-book",
}

// BaseURLFor builds the conventional site-relative path for a page:
// /{typePath}, /{typePath}/{category}, /{typePath}/{category}/{slugId}.
func BaseURLFor(pageType PageType, pageLevel PageLevel, category, slugID string) string {
	path := "/" + typePaths[pageType]
	if pageLevel == LevelHome {
		return path
	}
	if category != "" {
		path += "/" + category
	}
	if pageLevel == LevelDetail && slugID != "" {
		path += "/" + slugID
	}
	return path
}

// GenerateCategoriesSEO generates metadata for the categories vertical.
func (o *Orchestrator) GenerateCategoriesSEO(ctx context.Context, level PageLevel, category, slugID string) (*Meta, error) {
	return o.GeneratePage(ctx, Request{
		PageType:  PageTypeCategories,
		PageLevel: level,
		Category:  category,
		SlugID:    slugID,
		BaseURL:   BaseURLFor(PageTypeCategories, level, category, slugID),
	})
}

// GenerateSearchSEO generates metadata for the search vertical.
func (o *Orchestrator) GenerateSearchSEO(ctx context.Context, level PageLevel, category, slugID string) (*Meta, error) {
	return o.GeneratePage(ctx, Request{
		PageType:  PageTypeSearch,
		PageLevel: level,
		Category:  category,
		SlugID:    slugID,
		BaseURL:   BaseURLFor(PageTypeSearch, level, category, slugID),
	})
}

// GeneratePopularSEO generates metadata for the popular vertical.
func (o *Orchestrator) GeneratePopularSEO(ctx context.Context, level PageLevel, category, slugID string) (*Meta, error) {
	return o.GeneratePage(ctx, Request{
		PageType:  PageTypePopular,
		PageLevel: level,
		Category:  category,
		SlugID:    slugID,
		BaseURL:   BaseURLFor(PageTypePopular, level, category, slugID),
	})
}

// GenerateThemeParksSEO generates metadata for the theme-parks vertical.
// The category parameter doubles as the theme-park slug.
func (o *Orchestrator) GenerateThemeParksSEO(ctx context.Context, level PageLevel, category, slugID string) (*Meta, error) {
	return o.GeneratePage(ctx, Request{
		PageType:  PageTypeThemeParks,
		PageLevel: level,
		Category:  category,
		SlugID:    slugID,
		ThemePark: category,
		BaseURL:   BaseURLFor(PageTypeThemeParks, level, category, slugID),
	})
}

// GenerateLatestSEO generates metadata for the latest vertical.
func (o *Orchestrator) GenerateLatestSEO(ctx context.Context, level PageLevel, category, slugID string) (*Meta, error) {
	return o.GeneratePage(ctx, Request{
		PageType:  PageTypeLatest,
		PageLevel: level,
		Category:  category,
		SlugID:    slugID,
		BaseURL:   BaseURLFor(PageTypeLatest, level, category, slugID),
	})
}

// GenerateFirstColoringBookSEO generates metadata for the first-coloring-book
// vertical.
func (o *Orchestrator) GenerateFirstColoringBookSEO(ctx context.Context, level PageLevel, category, slugID string) (*Meta, error) {
	return o.GeneratePage(ctx, Request{
		PageType:  PageTypeFirstColoringBook,
		PageLevel: level,
		Category:  category,
		SlugID:    slugID,
		BaseURL:   BaseURLFor(PageTypeFirstColoringBook, level, category, slugID),
	})
}
