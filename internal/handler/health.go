// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/huepress-go/internal/version"
)

const healthProbePath = "/api/categories/list"

const healthCheckTimeout = 5 * time.Second

// HealthHandler handles health check requests.
type HealthHandler struct {
	apiURL    string
	client    *http.Client
	info      *version.Info
	startTime time.Time
}

// NewHealthHandler creates a new health handler probing the given backend.
func NewHealthHandler(apiURL string, info *version.Info) *HealthHandler {
	if info == nil {
		info = &version.Info{Version: "dev"}
	}
	return &HealthHandler{
		apiURL:    apiURL,
		client:    &http.Client{Timeout: healthCheckTimeout},
		info:      info,
		startTime: time.Now(),
	}
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
}

// Health handles GET /health requests.
//
// The service is degraded, not down, when the backend is unreachable:
// metadata generation still works from slug-derived defaults.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	backendCheck := h.checkBackend(r)

	overallStatus := "healthy"
	if backendCheck.Status != "healthy" {
		overallStatus = "degraded"
	}

	status := HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.info.Version,
		Checks: map[string]Check{
			"backend": backendCheck,
		},
	}

	if r.URL.Query().Get("verbose") == "true" {
		status.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
		}
	}

	writeJSON(w, http.StatusOK, status)
}

// Liveness handles GET /health/live - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "alive",
	})
}

// Readiness handles GET /health/ready.
// Readiness does not gate on the backend: the service degrades gracefully
// when the backend is down, so it is ready as soon as it can serve.
func (h *HealthHandler) Readiness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// checkBackend probes the backend API base URL.
func (h *HealthHandler) checkBackend(r *http.Request) Check {
	start := time.Now()

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.apiURL+healthProbePath, nil)
	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error()}
	}

	resp, err := h.client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return Check{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: latency.String(),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Check{
			Status:  "unhealthy",
			Message: "backend returned status " + resp.Status,
			Latency: latency.String(),
		}
	}

	return Check{
		Status:  "healthy",
		Message: "Connected",
		Latency: latency.String(),
	}
}

// Routes mounts the health endpoints on a chi router.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/health/live", h.Liveness)
	r.Get("/health/ready", h.Readiness)
}
