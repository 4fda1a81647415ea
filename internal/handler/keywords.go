// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/huepress-go/internal/keywords"
)

// KeywordsResponse is the payload for the page-kind keyword endpoint.
type KeywordsResponse struct {
	Keywords    []string `json:"keywords"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// KeywordsHandler serves the kind-switched keyword and copy builder. The
// frontend uses it for pages that have no config-table entry (blog, the AI
// generator, the categories index).
type KeywordsHandler struct{}

// NewKeywordsHandler creates a new keywords handler.
func NewKeywordsHandler() *KeywordsHandler {
	return &KeywordsHandler{}
}

// Keywords handles GET /api/seo/keywords.
// Query parameters: kind (required), category, title, query, month,
// custom (comma-separated), highlight.
func (h *KeywordsHandler) Keywords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind := keywords.PageKind(q.Get("kind"))
	if !keywords.ValidKind(kind) {
		writeJSONError(w, http.StatusBadRequest, "unknown page kind "+strconv.Quote(q.Get("kind")))
		return
	}

	month := 0
	if raw := q.Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			writeJSONError(w, http.StatusBadRequest, "month must be 1-12")
			return
		}
		month = m
	}

	ctx := keywords.PageContext{
		Kind:     kind,
		Category: q.Get("category"),
		Title:    q.Get("title"),
		Query:    q.Get("query"),
		Month:    month,
	}

	var custom []string
	if raw := q.Get("custom"); raw != "" {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				custom = append(custom, kw)
			}
		}
	}

	writeJSON(w, http.StatusOK, KeywordsResponse{
		Keywords:    keywords.ForPage(ctx, custom, nil),
		Title:       keywords.Title(ctx, ""),
		Description: keywords.Description(ctx, "", q.Get("highlight")),
	})
}

// Routes mounts the keywords endpoint on a chi router.
func (h *KeywordsHandler) Routes(r chi.Router) {
	r.Get("/api/seo/keywords", h.Keywords)
}
