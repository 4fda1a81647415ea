// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"

	"github.com/olegiv/huepress-go/internal/model"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder builds sitemap XML from the site's verticals and entity
// lists.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL,
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddVerticals adds the home page of every page type.
func (b *SitemapBuilder) AddVerticals() {
	for _, pt := range PageTypes {
		b.urls = append(b.urls, SitemapURL{
			Loc:        b.siteURL + "/" + typePaths[pt],
			ChangeFreq: ChangeFreqDaily,
			Priority:   "0.8",
		})
	}
}

// AddCategories adds one URL per category list page.
func (b *SitemapBuilder) AddCategories(categories []model.CategoryData) {
	for _, cat := range categories {
		if cat.Slug == "" {
			continue
		}
		b.urls = append(b.urls, SitemapURL{
			Loc:        b.siteURL + "/categories/" + cat.Slug,
			ChangeFreq: ChangeFreqWeekly,
			Priority:   "0.7",
		})
	}
}

// AddThemeParks adds one URL per theme-park page.
func (b *SitemapBuilder) AddThemeParks(parks []model.ThemeParkData) {
	for _, park := range parks {
		if park.Slug == "" {
			continue
		}
		b.urls = append(b.urls, SitemapURL{
			Loc:        b.siteURL + "/theme-parks/" + park.Slug,
			ChangeFreq: ChangeFreqWeekly,
			Priority:   "0.6",
		})
	}
}

// AddColoringBooks adds one URL per first-coloring-book page.
func (b *SitemapBuilder) AddColoringBooks(books []model.ColoringBookData) {
	for _, book := range books {
		if book.Slug == "" {
			continue
		}
		b.urls = append(b.urls, SitemapURL{
			Loc:        b.siteURL + "/first-coloring-book/" + book.Slug,
			ChangeFreq: ChangeFreqMonthly,
			Priority:   "0.6",
		})
	}
}

// Count returns the number of URLs added so far.
func (b *SitemapBuilder) Count() int {
	return len(b.urls)
}

// Build renders the sitemap XML document.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	out, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
