// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/olegiv/huepress-go/internal/cache"
)

func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories/list", func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"name":"Cats","slug":"cats","highlightPhrase":"Purr-fect for feline fans."},
			{"id":2,"name":"Unicorns","slug":"unicorns","seoTitle":"Magical Unicorn Coloring"}
		]}`))
	})
	mux.HandleFunc("/api/theme-parks", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":5,"name":"Adventure World","slug":"adventure-world"}]}`))
	})
	mux.HandleFunc("/api/coloring-books", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":9,"title":"My First Book","slug":"my-first-book"}]}`))
	})
	mux.HandleFunc("/api/coloring-pages/42", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":42,"title":"Golden Retriever","slug":"golden-retriever","difficulty":"easy"}}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCategoryBySlug(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(Options{APIURL: srv.URL, Development: true})

	got := c.Category(context.Background(), "cats")
	if got == nil {
		t.Fatal("Category() = nil, want record")
	}
	if got.Name != "Cats" || got.ID != 1 {
		t.Errorf("Category() = %+v, want Cats/1", got)
	}
	if got.HighlightPhrase != "Purr-fect for feline fans." {
		t.Errorf("HighlightPhrase = %q", got.HighlightPhrase)
	}
}

func TestCategoryNotInList(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(Options{APIURL: srv.URL, Development: true})

	if got := c.Category(context.Background(), "dinosaurs"); got != nil {
		t.Errorf("Category() = %+v, want nil for unknown slug", got)
	}
}

func TestColoringPageByID(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(Options{APIURL: srv.URL, Development: true})

	got := c.ColoringPage(context.Background(), "42")
	if got == nil {
		t.Fatal("ColoringPage() = nil, want record")
	}
	if got.Title != "Golden Retriever" || got.Difficulty != "easy" {
		t.Errorf("ColoringPage() = %+v", got)
	}
}

func TestColoringPageNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(Options{APIURL: srv.URL, Development: true})

	if got := c.ColoringPage(context.Background(), "999"); got != nil {
		t.Errorf("ColoringPage() = %+v, want nil on 404", got)
	}
}

func TestThemeParkAndColoringBook(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(Options{APIURL: srv.URL, Development: true})
	ctx := context.Background()

	if got := c.ThemePark(ctx, "adventure-world"); got == nil || got.Name != "Adventure World" {
		t.Errorf("ThemePark() = %+v, want Adventure World", got)
	}
	if got := c.ColoringBook(ctx, "my-first-book"); got == nil || got.Title != "My First Book" {
		t.Errorf("ColoringBook() = %+v, want My First Book", got)
	}
}

func TestBackendDownReturnsNil(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.Close() // Simulate network failure

	c := NewClient(Options{APIURL: srv.URL, Development: true})
	if got := c.Category(context.Background(), "cats"); got != nil {
		t.Errorf("Category() = %+v, want nil on network failure", got)
	}
}

func TestMalformedJSONReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(Options{APIURL: srv.URL, Development: true})
	if got := c.Category(context.Background(), "cats"); got != nil {
		t.Errorf("Category() = %+v, want nil on malformed JSON", got)
	}
}

func TestProductionCachesListFetches(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)

	backend := cache.NewSimpleMemoryCache(time.Minute)
	defer func() { _ = backend.Close() }()

	c := NewClient(Options{APIURL: srv.URL, Cache: backend, TTL: time.Minute})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if got := c.Category(ctx, "unicorns"); got == nil {
			t.Fatal("Category() = nil, want record")
		}
	}

	if n := hits.Load(); n != 1 {
		t.Errorf("backend list endpoint hit %d times, want 1 (cached)", n)
	}
}

func TestDevelopmentBypassesCache(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)

	backend := cache.NewSimpleMemoryCache(time.Minute)
	defer func() { _ = backend.Close() }()

	// Development must ignore the cache even when one is supplied.
	c := NewClient(Options{APIURL: srv.URL, Cache: backend, TTL: time.Minute, Development: true})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if got := c.Category(ctx, "cats"); got == nil {
			t.Fatal("Category() = nil, want record")
		}
	}

	if n := hits.Load(); n != 3 {
		t.Errorf("backend list endpoint hit %d times, want 3 (no caching)", n)
	}
}
