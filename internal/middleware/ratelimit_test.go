// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3, nil)
	h := rl.Middleware()(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/seo/page", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}

func TestRateLimiterBlocksOverBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, nil)
	h := rl.Middleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/seo/page", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRateLimiterKeysByClientIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, nil)
	h := rl.Middleware()(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.3:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client: status = %d, want 200", rec.Code)
	}

	// A different client has its own bucket.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.4:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Errorf("second client: status = %d, want 200", rec.Code)
	}
}

func TestGetClientIPHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:1234"

	if got := getClientIP(req); got != "10.0.0.5:1234" {
		t.Errorf("getClientIP() = %q, want RemoteAddr fallback", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := getClientIP(req); got != "203.0.113.9" {
		t.Errorf("getClientIP() = %q, want X-Forwarded-For", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.10")
	if got := getClientIP(req); got != "203.0.113.10" {
		t.Errorf("getClientIP() = %q, want X-Real-IP to win", got)
	}
}

func TestLimiterCacheClearIfExceeds(t *testing.T) {
	lc := newLimiterCache[string](1, 1)
	lc.get("a")
	lc.get("b")

	if lc.clearIfExceeds(5) {
		t.Error("clearIfExceeds(5) cleared a cache of 2 entries")
	}
	if !lc.clearIfExceeds(1) {
		t.Error("clearIfExceeds(1) did not clear a cache of 2 entries")
	}
	if lc.clearIfExceeds(1) {
		t.Error("clearIfExceeds(1) cleared an already empty cache")
	}
}
