// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/huepress-go/internal/model"
	"github.com/olegiv/huepress-go/internal/seo"
)

// nilFetcher mimics an unreachable backend: every lookup returns nil.
type nilFetcher struct{}

func (nilFetcher) Category(context.Context, string) *model.CategoryData         { return nil }
func (nilFetcher) ColoringPage(context.Context, string) *model.ColoringPageData { return nil }
func (nilFetcher) ThemePark(context.Context, string) *model.ThemeParkData       { return nil }
func (nilFetcher) ColoringBook(context.Context, string) *model.ColoringBookData { return nil }

type staticSitemap []byte

func (s staticSitemap) Sitemap() []byte { return []byte(s) }

func newTestRouter(sitemaps SitemapProvider) http.Handler {
	orchestrator := seo.NewOrchestrator(nilFetcher{}, "", "", nil)
	h := NewSEOHandler(orchestrator, sitemaps, "https://huepress.com", nil)

	r := chi.NewRouter()
	h.Routes(r)
	return r
}

func TestPageEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/seo/page?pageType=categories&pageLevel=category&category=unicorn&baseUrl=/categories/unicorn", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var meta seo.Meta
	if err := json.NewDecoder(rec.Body).Decode(&meta); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(meta.Title, "Unicorn") {
		t.Errorf("Title = %q, want slug-derived name", meta.Title)
	}
	if meta.Canonical != "https://huepress.com/categories/unicorn" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
}

func TestPageEndpointMissingParams(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/seo/page?pageType=categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPageEndpointInvalidPair(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/seo/page?pageType=blog&pageLevel=home", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestPageByPathEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/seo/popular/home", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var meta seo.Meta
	if err := json.NewDecoder(rec.Body).Decode(&meta); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if meta.Canonical != "https://huepress.com/popular" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
}

func TestPageByPathEndpointCategoryCanonical(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/seo/categories/category?category=unicorn", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var meta seo.Meta
	if err := json.NewDecoder(rec.Body).Decode(&meta); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if meta.Canonical != "https://huepress.com/categories/unicorn" {
		t.Errorf("Canonical = %q, want path-derived base URL", meta.Canonical)
	}
}

func TestRobotsEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "Sitemap: https://huepress.com/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line:\n%s", rec.Body.String())
	}
}

func TestSitemapEndpoint(t *testing.T) {
	router := newTestRouter(staticSitemap(`<?xml version="1.0"?><urlset></urlset>`))

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q, want application/xml", ct)
	}
}

func TestSitemapEndpointNotBuilt(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 before the first sitemap build", rec.Code)
	}
}
