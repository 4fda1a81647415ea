// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import "fmt"

// PageType is the content vertical of a page.
type PageType string

// The six page types.
const (
	PageTypeCategories        PageType = "categories"
	PageTypeSearch            PageType = "search"
	PageTypePopular           PageType = "popular"
	PageTypeThemeParks        PageType = "themeParks"
	PageTypeLatest            PageType = "latest"
	PageTypeFirstColoringBook PageType = "firstColoringBook"
)

// PageTypes lists all valid page types.
var PageTypes = []PageType{
	PageTypeCategories,
	PageTypeSearch,
	PageTypePopular,
	PageTypeThemeParks,
	PageTypeLatest,
	PageTypeFirstColoringBook,
}

// PageLevel is the drill-down depth of a page.
type PageLevel string

// The three page levels.
const (
	LevelHome     PageLevel = "home"
	LevelCategory PageLevel = "category"
	LevelDetail   PageLevel = "detail"
)

// PageLevels lists all valid page levels.
var PageLevels = []PageLevel{LevelHome, LevelCategory, LevelDetail}

// DataSource tags which entity a page configuration needs fetched.
type DataSource string

// Valid data sources.
const (
	SourceNone         DataSource = "none"
	SourceCategory     DataSource = "category"
	SourceColoringPage DataSource = "coloringPage"
	SourceThemePark    DataSource = "themePark"
)

// PageConfig is a template descriptor for one (PageType, PageLevel) pair.
// Static, loaded once, never mutated at runtime.
type PageConfig struct {
	BaseKeywords        []string   // may contain placeholders
	TitleTemplate       string     // placeholder template for the title
	DescriptionTemplate string     // placeholder template for the description
	DefaultTitleSuffix  string     // appended when the resolved title has no separator
	DataSource          DataSource // entity to fetch before generating
	IncludeAttributes   bool       // mix page-attribute keywords in
	DescriptionPrefix   string     // prepended to the resolved description
	ContextKeywords     []string   // extra literal keywords for this page
	KeywordsLimit       int        // maximum keywords emitted
}

// pageConfigs is the declarative (PageType x PageLevel) configuration table.
// Every pair must have exactly one entry; verifyConfigTable enforces this at
// process start. The literal keyword lists and template strings are content
// decisions and change only as content, never as refactoring.
var pageConfigs = map[PageType]map[PageLevel]PageConfig{
	PageTypeCategories: {
		LevelHome: {
			BaseKeywords:        []string{"coloring page categories", "free coloring pages", "printable coloring pages"},
			TitleTemplate:       "All Coloring Page Categories | HuePress",
			DescriptionTemplate: "Every coloring page category on HuePress in one place. Animals, holidays, characters, vehicles and many more free printable collections.",
			DataSource:          SourceNone,
			ContextKeywords:     []string{"browse coloring pages"},
			KeywordsLimit:       12,
		},
		LevelCategory: {
			BaseKeywords:        []string{"{categoryName} coloring pages", "free {categoryName} printables", "printable coloring pages"},
			TitleTemplate:       "{categoryName} Coloring Pages",
			DefaultTitleSuffix:  "Free Printables | HuePress",
			DescriptionTemplate: "Browse free printable {categoryName} coloring pages.{highlightPhrase} Download your favorites and print them at home in seconds.",
			DataSource:          SourceCategory,
			KeywordsLimit:       12,
		},
		LevelDetail: {
			BaseKeywords:        []string{"{title} coloring page", "{categoryName} coloring pages", "printable", "free"},
			TitleTemplate:       "{title} Coloring Page - Free Printable | HuePress",
			DescriptionTemplate: "Print this free {title} coloring page.{styleThemeText}{difficultyText}{ageText} Download the PDF and start coloring.",
			DataSource:          SourceColoringPage,
			IncludeAttributes:   true,
			KeywordsLimit:       12,
		},
	},
	PageTypeSearch: {
		LevelHome: {
			BaseKeywords:        []string{"search coloring pages", "find coloring pages", "free coloring pages"},
			TitleTemplate:       "Search Coloring Pages",
			DefaultTitleSuffix:  "HuePress",
			DescriptionTemplate: "Search thousands of free printable coloring pages by animal, character, holiday or theme.",
			DataSource:          SourceNone,
			KeywordsLimit:       12,
		},
		LevelCategory: {
			BaseKeywords:        []string{"{categoryName} coloring pages", "search coloring pages"},
			TitleTemplate:       "Search {categoryName} Coloring Pages | HuePress",
			DescriptionTemplate: "Coloring pages matching {categoryName}. Browse free printable results and download the ones you love.",
			DataSource:          SourceCategory,
			KeywordsLimit:       12,
		},
		LevelDetail: {
			BaseKeywords:        []string{"{title} coloring page", "search coloring pages"},
			TitleTemplate:       "{title} Coloring Page - Search Result | HuePress",
			DescriptionTemplate: "Print this free {title} coloring page found in search.{difficultyText}{ageText}",
			DataSource:          SourceColoringPage,
			IncludeAttributes:   true,
			KeywordsLimit:       12,
		},
	},
	PageTypePopular: {
		LevelHome: {
			BaseKeywords:        []string{"popular coloring pages", "best coloring pages", "trending coloring pages"},
			TitleTemplate:       "Popular Coloring Pages - Most Loved Printables | HuePress",
			DescriptionTemplate: "The most popular coloring pages on HuePress, ranked by downloads. Free printable favorites loved by kids, parents and teachers.",
			DataSource:          SourceNone,
			KeywordsLimit:       12,
		},
		LevelCategory: {
			BaseKeywords:        []string{"popular {categoryName} coloring pages", "{categoryName} coloring pages", "best coloring pages"},
			TitleTemplate:       "Popular {categoryName} Coloring Pages | HuePress",
			DescriptionTemplate: "The most loved {categoryName} coloring pages.{highlightPhrase} Free printables ranked by our community.",
			DataSource:          SourceCategory,
			KeywordsLimit:       12,
		},
		LevelDetail: {
			BaseKeywords:        []string{"{title} coloring page", "popular coloring pages", "printable"},
			TitleTemplate:       "{title} Coloring Page - Popular Printable | HuePress",
			DescriptionTemplate: "One of our most popular pages: {title}.{styleThemeText}{difficultyText}{ageText} Free to download and print.",
			DataSource:          SourceColoringPage,
			IncludeAttributes:   true,
			KeywordsLimit:       12,
		},
	},
	PageTypeThemeParks: {
		LevelHome: {
			BaseKeywords:        []string{"theme park coloring pages", "amusement park coloring pages", "free coloring pages"},
			TitleTemplate:       "Theme Park Coloring Pages | HuePress",
			DescriptionTemplate: "Theme park and amusement park coloring pages. Rides, mascots and attractions as free printables for kids.",
			DataSource:          SourceNone,
			ContextKeywords:     []string{"roller coaster coloring pages"},
			KeywordsLimit:       12,
		},
		LevelCategory: {
			BaseKeywords:        []string{"{themeParkName} coloring pages", "theme park coloring pages"},
			TitleTemplate:       "{themeParkName} Coloring Pages",
			DefaultTitleSuffix:  "Free Printables | HuePress",
			DescriptionTemplate: "Free printable {themeParkName} coloring pages.{highlightPhrase} Bring the park home and start coloring.",
			DataSource:          SourceThemePark,
			KeywordsLimit:       12,
		},
		LevelDetail: {
			BaseKeywords:        []string{"{title} coloring page", "{themeParkName} coloring pages", "printable"},
			TitleTemplate:       "{title} Coloring Page - {themeParkName} | HuePress",
			DescriptionTemplate: "Print this free {title} coloring page from {themeParkName}.{difficultyText}{ageText}",
			DataSource:          SourceColoringPage,
			IncludeAttributes:   true,
			KeywordsLimit:       12,
		},
	},
	PageTypeLatest: {
		LevelHome: {
			BaseKeywords:        []string{"new coloring pages", "latest coloring pages", "recently added coloring pages"},
			TitleTemplate:       "Latest Coloring Pages - New Printables Every Week | HuePress",
			DescriptionTemplate: "The newest coloring pages on HuePress. Fresh free printables added every week - be the first to color them.",
			DataSource:          SourceNone,
			KeywordsLimit:       12,
		},
		LevelCategory: {
			BaseKeywords:        []string{"new {categoryName} coloring pages", "{categoryName} coloring pages", "latest coloring pages"},
			TitleTemplate:       "Latest {categoryName} Coloring Pages | HuePress",
			DescriptionTemplate: "The newest {categoryName} coloring pages.{highlightPhrase} Fresh free printables, added weekly.",
			DataSource:          SourceCategory,
			KeywordsLimit:       12,
		},
		LevelDetail: {
			BaseKeywords:        []string{"{title} coloring page", "new coloring pages", "printable"},
			TitleTemplate:       "{title} Coloring Page - New Printable | HuePress",
			DescriptionTemplate: "Just added: {title}.{styleThemeText}{difficultyText}{ageText} Free to download and print.",
			DataSource:          SourceColoringPage,
			IncludeAttributes:   true,
			KeywordsLimit:       12,
		},
	},
	PageTypeFirstColoringBook: {
		LevelHome: {
			BaseKeywords:        []string{"first coloring book", "toddler coloring pages", "my first coloring book"},
			TitleTemplate:       "My First Coloring Book - Printable Pages for Toddlers | HuePress",
			DescriptionTemplate: "My First Coloring Book: extra-simple printable pages with thick outlines, made for toddlers and first-time colorers.",
			DataSource:          SourceNone,
			ContextKeywords:     []string{"easy coloring pages for toddlers"},
			KeywordsLimit:       12,
		},
		LevelCategory: {
			BaseKeywords:        []string{"{categoryName} coloring book", "first coloring book", "toddler coloring pages"},
			TitleTemplate:       "{categoryName} - My First Coloring Book | HuePress",
			DescriptionTemplate: "The {categoryName} book from our My First Coloring Book series. Simple printable pages with thick outlines for little hands.",
			DataSource:          SourceCategory,
			KeywordsLimit:       12,
		},
		LevelDetail: {
			BaseKeywords:        []string{"{title} coloring page", "first coloring book", "toddler coloring pages"},
			TitleTemplate:       "{title} Coloring Page - My First Coloring Book | HuePress",
			DescriptionTemplate: "Print this free {title} page from My First Coloring Book.{ageText} Thick outlines, made for toddlers.",
			DataSource:          SourceColoringPage,
			IncludeAttributes:   true,
			KeywordsLimit:       12,
		},
	},
}

// Lookup returns the configuration for a (PageType, PageLevel) pair.
// A missing pair is a programming error and yields a non-nil error that
// callers must propagate, never swallow into a default.
func Lookup(pageType PageType, pageLevel PageLevel) (PageConfig, error) {
	levels, ok := pageConfigs[pageType]
	if !ok {
		return PageConfig{}, fmt.Errorf("no SEO config for page type %q", pageType)
	}
	cfg, ok := levels[pageLevel]
	if !ok {
		return PageConfig{}, fmt.Errorf("no SEO config for page type %q at level %q", pageType, pageLevel)
	}
	return cfg, nil
}

// verifyConfigTable panics unless every (PageType, PageLevel) pair is
// configured. A hole in the table is a build-time mistake that must fail
// at process start, not degrade SEO output at request time.
func verifyConfigTable() {
	for _, pt := range PageTypes {
		for _, pl := range PageLevels {
			if _, err := Lookup(pt, pl); err != nil {
				panic(err)
			}
		}
	}
}

func init() {
	verifyConfigTable()
}
