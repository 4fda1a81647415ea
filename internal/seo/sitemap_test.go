// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/olegiv/huepress-go/internal/model"
)

func TestSitemapBuilderBuild(t *testing.T) {
	b := NewSitemapBuilder("https://huepress.com")
	b.AddHomepage()
	b.AddVerticals()
	b.AddCategories([]model.CategoryData{
		{Name: "Cats", Slug: "cats"},
		{Name: "No Slug"}, // skipped
	})
	b.AddThemeParks([]model.ThemeParkData{{Name: "Adventure World", Slug: "adventure-world"}})
	b.AddColoringBooks([]model.ColoringBookData{{Title: "Farm Friends", Slug: "farm-friends"}})

	// homepage + 6 verticals + 1 category + 1 park + 1 book
	if got := b.Count(); got != 10 {
		t.Errorf("Count() = %d, want 10", got)
	}

	out, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var parsed Sitemap
	if err := xml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("Build() produced invalid XML: %v", err)
	}
	if parsed.XMLNS != XMLNamespace {
		t.Errorf("xmlns = %q, want %q", parsed.XMLNS, XMLNamespace)
	}
	if len(parsed.URLs) != 10 {
		t.Errorf("parsed URL count = %d, want 10", len(parsed.URLs))
	}

	for _, want := range []string{
		"https://huepress.com",
		"https://huepress.com/categories",
		"https://huepress.com/theme-parks",
		"https://huepress.com/first-coloring-book",
		"https://huepress.com/categories/cats",
		"https://huepress.com/theme-parks/adventure-world",
		"https://huepress.com/first-coloring-book/farm-friends",
	} {
		found := false
		for _, u := range parsed.URLs {
			if u.Loc == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sitemap missing URL %q", want)
		}
	}

	if !strings.HasPrefix(string(out), "<?xml") {
		t.Error("sitemap must start with the XML declaration")
	}
}

func TestSitemapBuilderSkipsEmptySlugs(t *testing.T) {
	b := NewSitemapBuilder("https://huepress.com")
	b.AddCategories([]model.CategoryData{{Name: "Broken"}})
	b.AddThemeParks([]model.ThemeParkData{{Name: "Broken"}})
	b.AddColoringBooks([]model.ColoringBookData{{Title: "Broken"}})

	if got := b.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0 for entries without slugs", got)
	}
}
