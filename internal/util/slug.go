// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation, validation and display-name formatting with
// Unicode normalization support.
package util

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownCategory is the display-name fallback for empty or invalid slugs.
const UnknownCategory = "Unknown Category"

var (
	// slugRegex matches non-alphanumeric characters (except hyphens)
	slugRegex = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a string to a URL-friendly slug.
// It converts to lowercase, removes accents, replaces spaces with hyphens,
// and removes all non-alphanumeric characters except hyphens.
func Slugify(s string) string {
	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, " ", "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}

// FormatSlugToName converts a hyphenated slug into a human-readable,
// title-cased display name: "mickey-mouse" becomes "Mickey Mouse".
// A trailing literal "slug" segment is stripped (some slugs carry a
// "-slug" suffix for routing reasons). Empty or invalid input yields
// UnknownCategory. The output feeds generated page titles directly, so
// the algorithm must stay stable.
func FormatSlugToName(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return UnknownCategory
	}

	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}

	parts := strings.Split(slug, "-")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return UnknownCategory
	}

	if len(segments) > 1 && strings.EqualFold(segments[len(segments)-1], "slug") {
		segments = segments[:len(segments)-1]
	}

	for i, seg := range segments {
		lower := strings.ToLower(seg)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		segments[i] = string(r)
	}

	return strings.Join(segments, " ")
}

// ExtractIDFromSlugID extracts the trailing numeric id from a compound
// slug-id string like "golden-retriever-42". Returns the id and true when
// the final segment parses as an integer, "" and false otherwise.
func ExtractIDFromSlugID(slugID string) (string, bool) {
	if slugID == "" {
		return "", false
	}

	parts := strings.Split(slugID, "-")
	last := parts[len(parts)-1]
	if _, err := strconv.ParseInt(last, 10, 64); err != nil {
		return "", false
	}
	return last, true
}
