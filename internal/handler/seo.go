// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the HTTP endpoints: SEO metadata, robots.txt,
// sitemap.xml and health checks.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/huepress-go/internal/seo"
)

// SitemapProvider serves the latest sitemap snapshot.
type SitemapProvider interface {
	Sitemap() []byte
}

// SEOHandler serves page metadata and the crawler files.
type SEOHandler struct {
	orchestrator *seo.Orchestrator
	sitemaps     SitemapProvider
	siteURL      string
	logger       *slog.Logger
}

// NewSEOHandler creates a new SEO handler.
func NewSEOHandler(orchestrator *seo.Orchestrator, sitemaps SitemapProvider, siteURL string, logger *slog.Logger) *SEOHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SEOHandler{
		orchestrator: orchestrator,
		sitemaps:     sitemaps,
		siteURL:      siteURL,
		logger:       logger,
	}
}

// Page handles GET /api/seo/page.
// Query parameters: pageType, pageLevel, category, slugId, themePark, baseUrl.
func (h *SEOHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.generate(w, r, seo.Request{
		PageType:  seo.PageType(q.Get("pageType")),
		PageLevel: seo.PageLevel(q.Get("pageLevel")),
		Category:  q.Get("category"),
		SlugID:    q.Get("slugId"),
		ThemePark: q.Get("themePark"),
		BaseURL:   q.Get("baseUrl"),
	})
}

// PageByPath handles GET /api/seo/{pageType}/{pageLevel}.
// Category and slug id travel as query parameters; the canonical base URL
// is derived from the path segments.
func (h *SEOHandler) PageByPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := seo.Request{
		PageType:  seo.PageType(chi.URLParam(r, "pageType")),
		PageLevel: seo.PageLevel(chi.URLParam(r, "pageLevel")),
		Category:  q.Get("category"),
		SlugID:    q.Get("slugId"),
		ThemePark: q.Get("themePark"),
	}
	req.BaseURL = seo.BaseURLFor(req.PageType, req.PageLevel, req.Category, req.SlugID)
	h.generate(w, r, req)
}

func (h *SEOHandler) generate(w http.ResponseWriter, r *http.Request, req seo.Request) {
	if req.PageType == "" || req.PageLevel == "" {
		writeJSONError(w, http.StatusBadRequest, "pageType and pageLevel are required")
		return
	}

	meta, err := h.orchestrator.GeneratePage(r.Context(), req)
	if err != nil {
		h.logger.Warn("metadata generation rejected",
			"page_type", req.PageType,
			"page_level", req.PageLevel,
			"error", err,
		)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, meta)
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	builder := seo.NewRobotsBuilder(seo.RobotsConfig{SiteURL: h.siteURL})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(builder.Build()))
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, _ *http.Request) {
	var snapshot []byte
	if h.sitemaps != nil {
		snapshot = h.sitemaps.Sitemap()
	}
	if len(snapshot) == 0 {
		writeJSONError(w, http.StatusServiceUnavailable, "sitemap not built yet")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(snapshot)
}

// Routes mounts all SEO endpoints on a chi router.
func (h *SEOHandler) Routes(r chi.Router) {
	r.Get("/api/seo/page", h.Page)
	r.Get("/api/seo/{pageType}/{pageLevel}", h.PageByPath)
	r.Get("/robots.txt", h.Robots)
	r.Get("/sitemap.xml", h.Sitemap)
}
