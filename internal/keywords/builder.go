// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package keywords

import (
	"strings"

	"github.com/olegiv/huepress-go/internal/util"
)

// PageKind classifies the page being rendered for keyword and copy selection.
type PageKind string

// The closed set of page kinds.
const (
	PageHome              PageKind = "home"
	PageList              PageKind = "list"
	PageDetail            PageKind = "detail"
	PageSearch            PageKind = "search"
	PagePopular           PageKind = "popular"
	PageLatest            PageKind = "latest"
	PageThemeParks        PageKind = "theme-parks"
	PageFirstColoringBook PageKind = "first-coloring-book"
	PageAIGenerator       PageKind = "ai-generator"
	PageBlog              PageKind = "blog"
	PageCategoriesIndex   PageKind = "categories-index"
)

// Kinds lists all valid page kinds.
var Kinds = []PageKind{
	PageHome, PageList, PageDetail, PageSearch, PagePopular, PageLatest,
	PageThemeParks, PageFirstColoringBook, PageAIGenerator, PageBlog,
	PageCategoriesIndex,
}

// ValidKind reports whether k is one of the known page kinds.
func ValidKind(k PageKind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// PageContext describes which page is being rendered. Constructed fresh per
// request, never persisted.
type PageContext struct {
	Kind     PageKind
	Category string // category slug, optional
	Title    string // page/entity title, optional
	Query    string // free-text search query, optional
	Month    int    // 1-12 for seasonal selection; 0 = current month
}

// ForPage produces the deduplicated, capped keyword list for a page:
// top core keywords, one seasonal keyword, a per-kind mix, optional custom
// keywords, and up to three backend-supplied keywords. Exact-string
// deduplication, first occurrence wins, capped at DefaultLimit. Pure:
// identical input yields identical output.
func ForPage(ctx PageContext, custom, backend []string) []string {
	out := make([]string, 0, DefaultLimit*2)

	out = append(out, topN(coreKeywords, 3)...)
	out = append(out, topN(SeasonalKeywords(ctx.Month), 1)...)
	out = append(out, kindKeywords(ctx)...)
	out = append(out, custom...)
	out = append(out, topN(backend, 3)...)

	return Dedupe(out, DefaultLimit)
}

// kindKeywords returns the per-kind keyword mix. Each branch is an
// independent content decision; there is no shared fallback.
func kindKeywords(ctx PageContext) []string {
	switch ctx.Kind {
	case PageHome:
		out := make([]string, 0, 8)
		out = append(out, topN(coreKeywords, 2)...)
		out = append(out, topN(holidayKeywords, 2)...)
		out = append(out, topN(animalKeywords, 2)...)
		out = append(out, topN(characterKeywords, 2)...)
		return out

	case PageList:
		out := []string{}
		if ctx.Category != "" {
			out = append(out, strings.ToLower(util.FormatSlugToName(ctx.Category))+" coloring pages")
			out = append(out, CategoryKeywords(ctx.Category)...)
		}
		return append(out, "free printable coloring sheets")

	case PageDetail:
		out := []string{}
		if ctx.Title != "" {
			out = append(out, ctx.Title, ctx.Title+" coloring page")
		}
		if ctx.Category != "" {
			out = append(out, ctx.Category+" coloring pages")
			out = append(out, CategoryKeywords(ctx.Category)...)
		}
		return append(out, Modifiers...)

	case PageSearch:
		out := []string{}
		if ctx.Query != "" {
			out = append(out, ctx.Query)
		}
		if ctx.Category != "" {
			out = append(out, CategoryKeywords(ctx.Category)...)
		}
		return append(out, "search coloring pages")

	case PagePopular:
		return []string{"popular coloring pages", "best coloring pages", "trending coloring pages"}

	case PageLatest:
		return []string{"new coloring pages", "latest coloring pages", "recently added coloring pages"}

	case PageThemeParks:
		out := []string{"theme park coloring pages", "amusement park coloring pages"}
		if ctx.Category != "" {
			out = append(out, strings.ToLower(util.FormatSlugToName(ctx.Category))+" coloring pages")
		}
		return out

	case PageFirstColoringBook:
		return []string{"first coloring book", "toddler coloring pages", "my first coloring book"}

	case PageAIGenerator:
		return []string{"ai coloring page generator", "custom coloring pages", "create your own coloring page"}

	case PageBlog:
		return []string{"coloring tips", "coloring activities", "coloring blog"}

	case PageCategoriesIndex:
		return []string{"coloring page categories", "coloring pages by category", "browse coloring pages"}
	}

	return nil
}

// Input is the object-based keyword assembly used by the config-driven
// generator (distinct from the kind-switched ForPage path; both call sites
// exist and both dedupe and cap independently).
type Input struct {
	Base       []string // config base keywords, placeholders already resolved
	Category   []string // entity-derived category/theme-park/book keywords
	Attribute  []string // page attribute keywords (theme/style/difficulty/age)
	Additional []string // backend additionalKeywords
	Limit      int      // 0 = DefaultLimit
}

// Assemble combines keyword groups in priority order, deduplicates and caps.
func Assemble(in Input) []string {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]string, 0, len(in.Base)+len(in.Category)+len(in.Attribute)+len(in.Additional))
	out = append(out, in.Base...)
	out = append(out, in.Category...)
	out = append(out, in.Attribute...)
	out = append(out, in.Additional...)

	return Dedupe(out, limit)
}

// Dedupe removes duplicate keywords (case-sensitive exact match, first
// occurrence wins), drops empty entries and truncates to limit.
// Case-sensitivity is deliberate: title-cased and lowercase variants of the
// same phrase serve different surfaces and must both survive.
func Dedupe(kws []string, limit int) []string {
	seen := make(map[string]struct{}, len(kws))
	out := make([]string, 0, len(kws))

	for _, kw := range kws {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
		if len(out) == limit {
			break
		}
	}

	return out
}
