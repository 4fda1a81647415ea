// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the backend entity records consumed by the SEO
// pipeline. Records are read-only in this service: they are fetched per
// request and discarded once metadata has been produced.
package model

import "time"

// CategoryData is a coloring-page category record.
type CategoryData struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	SEOTitle           string   `json:"seoTitle,omitempty"`
	SEODescription     string   `json:"seoDescription,omitempty"`
	AdditionalKeywords []string `json:"additionalKeywords,omitempty"`
	HighlightPhrase    string   `json:"highlightPhrase,omitempty"`
}

// ColoringPageData is a single coloring page record.
type ColoringPageData struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Description        string     `json:"description,omitempty"`
	PreviewURL         string     `json:"previewUrl,omitempty"`
	Theme              string     `json:"theme,omitempty"`
	Style              string     `json:"style,omitempty"`
	Difficulty         string     `json:"difficulty,omitempty"`
	AgeRange           string     `json:"ageRange,omitempty"`
	SEOTitle           string     `json:"seoTitle,omitempty"`
	SEODescription     string     `json:"seoDescription,omitempty"`
	AdditionalKeywords []string   `json:"additionalKeywords,omitempty"`
	CustomTitleSuffix  string     `json:"customTitleSuffix,omitempty"`
	PublishedAt        *time.Time `json:"publishedAt,omitempty"`
}

// ThemeParkData is a theme-park collection record.
type ThemeParkData struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	SEOTitle           string   `json:"seoTitle,omitempty"`
	SEODescription     string   `json:"seoDescription,omitempty"`
	AdditionalKeywords []string `json:"additionalKeywords,omitempty"`
	HighlightPhrase    string   `json:"highlightPhrase,omitempty"`
}

// ColoringBookData is a printable coloring-book record.
type ColoringBookData struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	SEOTitle           string   `json:"seoTitle,omitempty"`
	SEODescription     string   `json:"seoDescription,omitempty"`
	AdditionalKeywords []string `json:"additionalKeywords,omitempty"`
}
