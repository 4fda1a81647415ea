// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package keywords

import (
	"strings"
	"testing"
)

func TestTitleKindTable(t *testing.T) {
	tests := []struct {
		ctx  PageContext
		want string
	}{
		{PageContext{Kind: PageList, Category: "unicorns"}, "Unicorns Coloring Pages - Free Printables | HuePress"},
		{PageContext{Kind: PageDetail, Title: "Cute Cat"}, "Cute Cat Coloring Page - Free Printable | HuePress"},
		{PageContext{Kind: PageDetail, Category: "cute-cat"}, "Cute Cat Coloring Page - Free Printable | HuePress"},
		{PageContext{Kind: PagePopular}, "Popular Coloring Pages - Most Loved Printables | HuePress"},
		{PageContext{Kind: PageCategoriesIndex}, "All Coloring Page Categories | HuePress"},
	}

	for _, tt := range tests {
		if got := Title(tt.ctx, ""); got != tt.want {
			t.Errorf("Title(%+v) = %q, want %q", tt.ctx, got, tt.want)
		}
	}
}

func TestTitleSearchQuotesQuery(t *testing.T) {
	got := Title(PageContext{Kind: PageSearch, Query: "dragons"}, "")
	if !strings.Contains(got, `"dragons"`) {
		t.Errorf("Title() = %q, want quoted query", got)
	}
}

func TestDescriptionListWithoutHighlight(t *testing.T) {
	got := Description(PageContext{Kind: PageList, Category: "cats"}, "", "")

	if !strings.Contains(got, "Cats coloring pages. Download") {
		t.Errorf("Description() = %q, want canned text without splice", got)
	}
}
