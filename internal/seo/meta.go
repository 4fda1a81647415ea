// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo resolves complete page metadata for the HuePress site:
// a declarative per-page configuration table, a template-resolution
// generator and an orchestrator that wires config lookup, entity
// fetching and generation together.
package seo

import (
	"strings"
	"unicode"
)

// DefaultSiteURL is the production domain, used when a request supplies
// no site URL.
const DefaultSiteURL = "https://huepress.com"

// DefaultSiteName is the public site name.
const DefaultSiteName = "HuePress"

// Meta holds the resolved SEO metadata for a page. Produced once per
// request; this layer does not cache it.
type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"` // comma-joined
	Canonical   string    `json:"canonical"`
	Robots      string    `json:"robots"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// OpenGraph is the Open Graph block of the resolved metadata.
type OpenGraph struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	Type          string `json:"type"` // website or article
	SiteName      string `json:"siteName"`
	Image         string `json:"image,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
}

// Twitter is the Twitter card block of the resolved metadata.
type Twitter struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// makeAbsoluteURL ensures a URL is absolute by prepending the site URL if needed.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}

// capitalizeFirst upper-cases the first rune of s.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
