// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package keywords

import (
	"reflect"
	"testing"
)

func TestSeasonalKeywords(t *testing.T) {
	tests := []struct {
		month int
		want  []string
	}{
		{12, []string{"winter coloring pages", "christmas coloring pages"}},
		{7, []string{"summer coloring pages", "4th of july coloring pages"}},
		{10, []string{"halloween coloring pages", "autumn coloring pages"}},
	}

	for _, tt := range tests {
		if got := SeasonalKeywords(tt.month); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SeasonalKeywords(%d) = %v, want %v", tt.month, got, tt.want)
		}
	}
}

func TestSeasonalKeywordsOutOfRange(t *testing.T) {
	for _, month := range []int{-1, 13, 99} {
		if got := SeasonalKeywords(month); len(got) != 0 {
			t.Errorf("SeasonalKeywords(%d) = %v, want empty", month, got)
		}
	}
}

func TestSeasonalKeywordsDefaultsToCurrentMonth(t *testing.T) {
	if got := SeasonalKeywords(0); len(got) == 0 {
		t.Error("SeasonalKeywords(0) = empty, want current month's keywords")
	}
}

func TestCategoryKeywordsExactMatch(t *testing.T) {
	got := CategoryKeywords("unicorns")
	if len(got) == 0 || got[0] != "unicorn coloring pages" {
		t.Errorf("CategoryKeywords(%q) = %v, want curated unicorn list", "unicorns", got)
	}
}

func TestCategoryKeywordsFuzzyMatch(t *testing.T) {
	tests := []struct {
		slug  string
		first string
	}{
		{"cat", "animal coloring pages"},              // animals pattern
		{"superhero-squad", "cartoon coloring pages"}, // characters pattern
		{"dragon-lair", "unicorn coloring pages"},     // fantasy pattern
		{"abc-letters", "alphabet coloring pages"},    // education pattern
		{"monster-truck", "car coloring pages"},       // vehicles pattern
	}

	for _, tt := range tests {
		got := CategoryKeywords(tt.slug)
		if len(got) != clusterTopN {
			t.Errorf("CategoryKeywords(%q) returned %d keywords, want %d", tt.slug, len(got), clusterTopN)
		}
		if got[0] != tt.first {
			t.Errorf("CategoryKeywords(%q)[0] = %q, want %q", tt.slug, got[0], tt.first)
		}
	}
}

func TestCategoryKeywordsPriorityOrder(t *testing.T) {
	// "cat-princess" matches both animals and characters; animals wins.
	got := CategoryKeywords("cat-princess")
	if got[0] != "animal coloring pages" {
		t.Errorf("CategoryKeywords(%q)[0] = %q, want animals cluster first", "cat-princess", got[0])
	}
}

func TestCategoryKeywordsDefaultFallback(t *testing.T) {
	got := CategoryKeywords("zzz-nothing-matches")
	if !reflect.DeepEqual(got, defaultKeywords) {
		t.Errorf("CategoryKeywords(unmatched) = %v, want default cluster %v", got, defaultKeywords)
	}
}

func TestCategoryKeywordsReturnsCopy(t *testing.T) {
	got := CategoryKeywords("unicorns")
	got[0] = "mutated"

	again := CategoryKeywords("unicorns")
	if again[0] == "mutated" {
		t.Error("CategoryKeywords shares backing array with internal data")
	}
}
