// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package keywords assembles ranked, deduplicated keyword lists for
// HuePress page metadata from curated topic clusters, a seasonal
// calendar and backend-supplied keywords.
package keywords

import (
	"regexp"
	"time"
)

// DefaultLimit is the maximum number of keywords emitted for any page.
const DefaultLimit = 12

// Curated keyword clusters. Order within a cluster is rank order: builders
// take the top entries first.
var (
	coreKeywords = []string{
		"coloring pages",
		"free coloring pages",
		"printable coloring pages",
		"coloring sheets",
		"kids coloring pages",
		"adult coloring pages",
	}

	holidayKeywords = []string{
		"christmas coloring pages",
		"halloween coloring pages",
		"easter coloring pages",
		"valentines coloring pages",
		"thanksgiving coloring pages",
	}

	animalKeywords = []string{
		"animal coloring pages",
		"cat coloring pages",
		"dog coloring pages",
		"dinosaur coloring pages",
		"horse coloring pages",
		"butterfly coloring pages",
	}

	characterKeywords = []string{
		"cartoon coloring pages",
		"princess coloring pages",
		"superhero coloring pages",
		"fairy tale coloring pages",
		"anime coloring pages",
	}

	fantasyKeywords = []string{
		"unicorn coloring pages",
		"dragon coloring pages",
		"mermaid coloring pages",
		"fairy coloring pages",
	}

	educationKeywords = []string{
		"alphabet coloring pages",
		"number coloring pages",
		"educational coloring pages",
		"preschool coloring pages",
	}

	vehicleKeywords = []string{
		"car coloring pages",
		"truck coloring pages",
		"train coloring pages",
		"airplane coloring pages",
	}

	defaultKeywords = []string{
		"coloring pages",
		"printable coloring sheets",
		"free printables",
	}

	// Modifiers are short qualifier keywords mixed into detail pages.
	Modifiers = []string{"free", "printable", "easy", "cute", "pdf"}
)

// seasonalCalendar maps a calendar month (1-12) to its seasonal keywords.
var seasonalCalendar = map[int][]string{
	1:  {"winter coloring pages", "new year coloring pages"},
	2:  {"valentines day coloring pages", "winter coloring pages"},
	3:  {"spring coloring pages", "st patricks day coloring pages"},
	4:  {"easter coloring pages", "spring coloring pages"},
	5:  {"flower coloring pages", "mothers day coloring pages"},
	6:  {"summer coloring pages"},
	7:  {"summer coloring pages", "4th of july coloring pages"},
	8:  {"back to school coloring pages", "summer coloring pages"},
	9:  {"fall coloring pages", "back to school coloring pages"},
	10: {"halloween coloring pages", "autumn coloring pages"},
	11: {"thanksgiving coloring pages", "fall coloring pages"},
	12: {"winter coloring pages", "christmas coloring pages"},
}

// categoryKeywordMap maps exact category slugs to curated keyword lists.
// Slugs not listed here fall through to the regex cluster match.
var categoryKeywordMap = map[string][]string{
	"animals":   animalKeywords,
	"cats":      {"cat coloring pages", "kitten coloring pages", "cute cat printables"},
	"dogs":      {"dog coloring pages", "puppy coloring pages", "dog breed printables"},
	"dinosaurs": {"dinosaur coloring pages", "t-rex coloring pages", "jurassic printables"},
	"unicorns":  {"unicorn coloring pages", "magical unicorn printables", "rainbow unicorn pages"},
	"princesses": {"princess coloring pages", "princess printables", "fairy tale coloring pages"},
	"vehicles":  vehicleKeywords,
	"holidays":  holidayKeywords,
	"default":   defaultKeywords,
}

// clusterPattern pairs a slug-matching regexp with its keyword cluster.
type clusterPattern struct {
	re      *regexp.Regexp
	cluster []string
}

// clusterPatterns is checked in fixed priority order:
// animals -> characters -> fantasy -> education -> vehicles.
var clusterPatterns = []clusterPattern{
	{regexp.MustCompile(`(?i)(cat|dog|animal|dino|horse|bird|fish|pet|bear|lion|tiger|butterfl|bunn|rabbit)`), animalKeywords},
	{regexp.MustCompile(`(?i)(princess|superhero|cartoon|anime|character|hero)`), characterKeywords},
	{regexp.MustCompile(`(?i)(unicorn|dragon|mermaid|fair|magic|fantasy|wizard)`), fantasyKeywords},
	{regexp.MustCompile(`(?i)(alphabet|letter|number|math|school|learn|abc|preschool)`), educationKeywords},
	{regexp.MustCompile(`(?i)(car|truck|train|plane|vehicle|tractor|rocket|boat)`), vehicleKeywords},
}

// clusterTopN is how many keywords a fuzzy cluster match contributes.
const clusterTopN = 3

// SeasonalKeywords returns the seasonal keywords for a calendar month
// (1-12). Month 0 means "current month". Out-of-range months yield an
// empty list, never an error.
func SeasonalKeywords(month int) []string {
	if month == 0 {
		month = int(time.Now().Month())
	}
	kws, ok := seasonalCalendar[month]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// CategoryKeywords returns curated keywords for a category slug.
// Exact map entries win; otherwise the slug is tested against the cluster
// patterns in priority order and the first match contributes its top
// keywords; unmatched slugs get the default cluster.
func CategoryKeywords(slug string) []string {
	if kws, ok := categoryKeywordMap[slug]; ok {
		out := make([]string, len(kws))
		copy(out, kws)
		return out
	}

	for _, cp := range clusterPatterns {
		if cp.re.MatchString(slug) {
			n := clusterTopN
			if n > len(cp.cluster) {
				n = len(cp.cluster)
			}
			out := make([]string, n)
			copy(out, cp.cluster[:n])
			return out
		}
	}

	out := make([]string, len(defaultKeywords))
	copy(out, defaultKeywords)
	return out
}

// topN returns the first n entries of a cluster (or fewer if the cluster
// is shorter).
func topN(cluster []string, n int) []string {
	if n > len(cluster) {
		n = len(cluster)
	}
	return cluster[:n]
}
