// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package keywords

import (
	"fmt"

	"github.com/olegiv/huepress-go/internal/util"
)

// SiteName is the public site name used in canned titles.
const SiteName = "HuePress"

// Title returns the canned page title for a context. A non-empty custom
// title wins unconditionally.
func Title(ctx PageContext, custom string) string {
	if custom != "" {
		return custom
	}

	switch ctx.Kind {
	case PageHome:
		return "Free Printable Coloring Pages for Kids & Adults | " + SiteName
	case PageList:
		return util.FormatSlugToName(ctx.Category) + " Coloring Pages - Free Printables | " + SiteName
	case PageDetail:
		title := ctx.Title
		if title == "" {
			title = util.FormatSlugToName(ctx.Category)
		}
		return title + " Coloring Page - Free Printable | " + SiteName
	case PageSearch:
		if ctx.Query != "" {
			return fmt.Sprintf("Search: %q - Coloring Pages | %s", ctx.Query, SiteName)
		}
		return "Search Coloring Pages | " + SiteName
	case PagePopular:
		return "Popular Coloring Pages - Most Loved Printables | " + SiteName
	case PageLatest:
		return "Latest Coloring Pages - New Printables Every Week | " + SiteName
	case PageThemeParks:
		return "Theme Park Coloring Pages | " + SiteName
	case PageFirstColoringBook:
		return "My First Coloring Book - Printable Pages for Toddlers | " + SiteName
	case PageAIGenerator:
		return "AI Coloring Page Generator - Create Your Own | " + SiteName
	case PageBlog:
		return "Coloring Tips & Ideas - " + SiteName + " Blog"
	case PageCategoriesIndex:
		return "All Coloring Page Categories | " + SiteName
	}

	return SiteName
}

// Description returns the canned meta description for a context. A non-empty
// custom description wins unconditionally. For list pages, highlightPhrase is
// spliced into the middle of the canned text when present.
func Description(ctx PageContext, custom, highlightPhrase string) string {
	if custom != "" {
		return custom
	}

	switch ctx.Kind {
	case PageHome:
		return "Thousands of free printable coloring pages for kids and adults. " +
			"Browse animals, holidays, characters and more - download, print and start coloring today."
	case PageList:
		name := util.FormatSlugToName(ctx.Category)
		desc := "Browse free printable " + name + " coloring pages."
		if highlightPhrase != "" {
			desc += " " + highlightPhrase
		}
		return desc + " Download your favorites and print them at home in seconds."
	case PageDetail:
		title := ctx.Title
		if title == "" {
			title = util.FormatSlugToName(ctx.Category)
		}
		return "Print this free " + title + " coloring page. " +
			"High-quality printable PDF, ready to download and color at home or in the classroom."
	case PageSearch:
		if ctx.Query != "" {
			return fmt.Sprintf("Coloring pages matching %q. Browse free printable results and download the ones you love.", ctx.Query)
		}
		return "Search thousands of free printable coloring pages by animal, character, holiday or theme."
	case PagePopular:
		return "The most popular coloring pages on " + SiteName + ", ranked by downloads. " +
			"Free printable favorites loved by kids, parents and teachers."
	case PageLatest:
		return "The newest coloring pages on " + SiteName + ". Fresh free printables added every week - " +
			"be the first to color them."
	case PageThemeParks:
		return "Theme park and amusement park coloring pages. Rides, mascots and attractions as free printables for kids."
	case PageFirstColoringBook:
		return "My First Coloring Book: extra-simple printable pages with thick outlines, " +
			"made for toddlers and first-time colorers."
	case PageAIGenerator:
		return "Describe anything and our AI turns it into a printable coloring page. " +
			"Create custom coloring pages in seconds, free."
	case PageBlog:
		return "Coloring tips, activity ideas and printables news from the " + SiteName + " team."
	case PageCategoriesIndex:
		return "Every coloring page category on " + SiteName + " in one place. " +
			"Animals, holidays, characters, vehicles and many more free printable collections."
	}

	return "Free printable coloring pages for kids and adults."
}
