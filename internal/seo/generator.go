// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"time"

	"github.com/olegiv/huepress-go/internal/keywords"
	"github.com/olegiv/huepress-go/internal/model"
	"github.com/olegiv/huepress-go/internal/util"
)

// GenericDescriptionCloser pads short descriptions that carry no
// admin-authored override.
const GenericDescriptionCloser = "Free printable coloring pages for kids and adults."

// minDescriptionLength is the threshold below which the generic closer is
// appended.
const minDescriptionLength = 100

// Context carries the fetched entity data and request parameters into the
// generator. Any entity pointer may be nil; generation always succeeds and
// degrades to slug-derived text.
type Context struct {
	Category     *model.CategoryData
	ColoringPage *model.ColoringPageData
	ThemePark    *model.ThemeParkData
	ColoringBook *model.ColoringBookData

	CategorySlug string // raw category request parameter
	SlugID       string // raw slug-id request parameter
	BaseURL      string // site-relative path for the canonical URL
	SiteURL      string // defaults to DefaultSiteURL
	SiteName     string // defaults to DefaultSiteName
}

// Generate resolves a page configuration against fetched entity data into
// complete metadata: keyword assembly, template substitution, backend
// override merging, canonical URL and OG image selection.
func Generate(cfg PageConfig, ctx Context) *Meta {
	siteURL := ctx.SiteURL
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	siteName := ctx.SiteName
	if siteName == "" {
		siteName = DefaultSiteName
	}

	seoTitle, seoDescription := backendOverrides(ctx)

	title := resolveTitle(cfg, ctx, seoTitle)
	description := resolveDescription(cfg, ctx, seoDescription)
	kws := assembleKeywords(cfg, ctx, seoTitle, seoDescription)
	canonical := siteURL + ctx.BaseURL
	ogImage := selectOGImage(ctx, siteURL)

	ogType := "website"
	publishedTime := ""
	if ctx.ColoringPage != nil {
		ogType = "article"
		if ctx.ColoringPage.PublishedAt != nil {
			publishedTime = ctx.ColoringPage.PublishedAt.Format(time.RFC3339)
		}
	}

	return &Meta{
		Title:       title,
		Description: description,
		Keywords:    strings.Join(kws, ", "),
		Canonical:   canonical,
		Robots:      "index,follow",
		OpenGraph: OpenGraph{
			Title:         title,
			Description:   description,
			URL:           canonical,
			Type:          ogType,
			SiteName:      siteName,
			Image:         ogImage,
			PublishedTime: publishedTime, // OG only, never Twitter
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Image:       ogImage,
		},
	}
}

// backendOverrides picks the admin-authored seoTitle/seoDescription from the
// most specific entity present.
func backendOverrides(ctx Context) (seoTitle, seoDescription string) {
	switch {
	case ctx.ColoringPage != nil:
		return ctx.ColoringPage.SEOTitle, ctx.ColoringPage.SEODescription
	case ctx.Category != nil:
		return ctx.Category.SEOTitle, ctx.Category.SEODescription
	case ctx.ThemePark != nil:
		return ctx.ThemePark.SEOTitle, ctx.ThemePark.SEODescription
	case ctx.ColoringBook != nil:
		return ctx.ColoringBook.SEOTitle, ctx.ColoringBook.SEODescription
	}
	return "", ""
}

// resolveTitle substitutes the title template, applies the default suffix
// when the result carries no separator, and appends the backend seoTitle
// when it is not already part of the text.
func resolveTitle(cfg PageConfig, ctx Context, seoTitle string) string {
	title := substitute(cfg.TitleTemplate, ctx)

	if cfg.DefaultTitleSuffix != "" && !strings.Contains(title, "|") && !strings.Contains(title, "-") {
		suffix := cfg.DefaultTitleSuffix
		if ctx.ColoringPage != nil && ctx.ColoringPage.CustomTitleSuffix != "" {
			suffix = ctx.ColoringPage.CustomTitleSuffix
		}
		title += " - " + suffix
	}

	if seoTitle != "" && !strings.Contains(title, seoTitle) {
		title += " | " + seoTitle
	}

	return title
}

// resolveDescription substitutes the description template, prepends the
// configured prefix, appends the backend seoDescription when absent from the
// text, and pads short descriptions with the generic closer.
func resolveDescription(cfg PageConfig, ctx Context, seoDescription string) string {
	desc := substitute(cfg.DescriptionTemplate, ctx)

	if cfg.DescriptionPrefix != "" {
		desc = cfg.DescriptionPrefix + " " + desc
	}

	appended := false
	if seoDescription != "" && !strings.Contains(desc, seoDescription) {
		desc += " " + seoDescription
		appended = true
	}

	if len(desc) < minDescriptionLength && !appended {
		desc += " " + GenericDescriptionCloser
	}

	return desc
}

// assembleKeywords runs the object-based keyword assembly: substituted base
// keywords, config context keywords, entity-derived keywords, attribute
// keywords, backend keywords and tokens mined from the backend overrides.
func assembleKeywords(cfg PageConfig, ctx Context, seoTitle, seoDescription string) []string {
	base := make([]string, 0, len(cfg.BaseKeywords)+len(cfg.ContextKeywords))
	for _, kw := range cfg.BaseKeywords {
		base = append(base, substitute(kw, ctx))
	}
	base = append(base, cfg.ContextKeywords...)

	var derived []string
	if ctx.Category != nil {
		derived = append(derived, strings.ToLower(util.FormatSlugToName(ctx.Category.Slug))+" coloring pages")
	}
	if ctx.ThemePark != nil {
		derived = append(derived, strings.ToLower(util.FormatSlugToName(ctx.ThemePark.Slug))+" coloring pages")
	}
	if ctx.ColoringBook != nil {
		derived = append(derived, strings.ToLower(util.FormatSlugToName(ctx.ColoringBook.Slug))+" coloring book")
	}

	var attrs []string
	if cfg.IncludeAttributes && ctx.ColoringPage != nil {
		attrs = attributeKeywords(ctx.ColoringPage)
	}

	additional := backendAdditionalKeywords(ctx)
	additional = append(additional, extractKeywords(seoTitle, 3, 3)...)
	additional = append(additional, extractKeywords(seoDescription, 4, 5)...)

	return keywords.Assemble(keywords.Input{
		Base:       base,
		Category:   derived,
		Attribute:  attrs,
		Additional: additional,
		Limit:      cfg.KeywordsLimit,
	})
}

// attributeKeywords turns the coloring page's attributes into keyword
// strings with fixed suffix patterns.
func attributeKeywords(page *model.ColoringPageData) []string {
	var out []string
	if page.Theme != "" {
		out = append(out, page.Theme+" coloring pages")
	}
	if page.Style != "" {
		out = append(out, page.Style+" style coloring page")
	}
	if page.Difficulty != "" {
		out = append(out, page.Difficulty+" coloring page")
	}
	if page.AgeRange != "" {
		out = append(out, "coloring pages for ages "+page.AgeRange)
	}
	if page.Title != "" {
		out = append(out, page.Title)
	}
	if page.Slug != "" {
		out = append(out, strings.ToLower(util.FormatSlugToName(page.Slug))+" printable")
	}
	return out
}

// backendAdditionalKeywords collects additionalKeywords from every fetched
// entity, most specific first.
func backendAdditionalKeywords(ctx Context) []string {
	var out []string
	if ctx.ColoringPage != nil {
		out = append(out, ctx.ColoringPage.AdditionalKeywords...)
	}
	if ctx.Category != nil {
		out = append(out, ctx.Category.AdditionalKeywords...)
	}
	if ctx.ThemePark != nil {
		out = append(out, ctx.ThemePark.AdditionalKeywords...)
	}
	if ctx.ColoringBook != nil {
		out = append(out, ctx.ColoringBook.AdditionalKeywords...)
	}
	return out
}

// extractKeywords mines keyword tokens from an admin-authored text:
// tokenized on whitespace and punctuation, keeping tokens longer than
// minLen characters, capped at max tokens.
func extractKeywords(text string, minLen, max int) []string {
	if text == "" {
		return nil
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '.' ||
			r == ';' || r == ':' || r == '!' || r == '?' || r == '|' || r == '-'
	})

	out := make([]string, 0, max)
	for _, tok := range tokens {
		if len(tok) <= minLen {
			continue
		}
		out = append(out, strings.ToLower(tok))
		if len(out) == max {
			break
		}
	}
	return out
}

// selectOGImage picks the Open Graph image in fixed priority order:
// coloring-page preview, category thumbnail, theme-park thumbnail,
// coloring-book thumbnail.
func selectOGImage(ctx Context, siteURL string) string {
	switch {
	case ctx.ColoringPage != nil && ctx.ColoringPage.PreviewURL != "":
		return makeAbsoluteURL(ctx.ColoringPage.PreviewURL, siteURL)
	case ctx.Category != nil && ctx.Category.Thumbnail != "":
		return makeAbsoluteURL(ctx.Category.Thumbnail, siteURL)
	case ctx.ThemePark != nil && ctx.ThemePark.Thumbnail != "":
		return makeAbsoluteURL(ctx.ThemePark.Thumbnail, siteURL)
	case ctx.ColoringBook != nil && ctx.ColoringBook.Thumbnail != "":
		return makeAbsoluteURL(ctx.ColoringBook.Thumbnail, siteURL)
	}
	return ""
}

// Placeholder names recognized in templates.
const (
	phCategoryName    = "{categoryName}"
	phThemeParkName   = "{themeParkName}"
	phTitle           = "{title}"
	phDifficultyText  = "{difficultyText}"
	phAgeText         = "{ageText}"
	phStyleThemeText  = "{styleThemeText}"
	phHighlightPhrase = "{highlightPhrase}"
)

// substitute resolves the placeholders a template actually references.
// A placeholder absent from the template costs nothing and can never leak
// a substitution into text that does not ask for it.
func substitute(template string, ctx Context) string {
	out := template

	if strings.Contains(out, phCategoryName) {
		out = strings.ReplaceAll(out, phCategoryName, categoryName(ctx))
	}
	if strings.Contains(out, phThemeParkName) {
		out = strings.ReplaceAll(out, phThemeParkName, themeParkName(ctx))
	}
	if strings.Contains(out, phTitle) {
		out = strings.ReplaceAll(out, phTitle, pageTitle(ctx))
	}
	if strings.Contains(out, phDifficultyText) {
		out = strings.ReplaceAll(out, phDifficultyText, difficultyText(ctx))
	}
	if strings.Contains(out, phAgeText) {
		out = strings.ReplaceAll(out, phAgeText, ageText(ctx))
	}
	if strings.Contains(out, phStyleThemeText) {
		out = strings.ReplaceAll(out, phStyleThemeText, styleThemeText(ctx))
	}
	if strings.Contains(out, phHighlightPhrase) {
		out = strings.ReplaceAll(out, phHighlightPhrase, highlightPhrase(ctx))
	}

	return out
}

// categoryName resolves {categoryName}: coloring-book slug, category slug,
// then the raw request parameter, all through FormatSlugToName; the literal
// "Coloring Pages" when no source exists at all.
func categoryName(ctx Context) string {
	slug := ""
	switch {
	case ctx.ColoringBook != nil && ctx.ColoringBook.Slug != "":
		slug = ctx.ColoringBook.Slug
	case ctx.Category != nil && ctx.Category.Slug != "":
		slug = ctx.Category.Slug
	case ctx.CategorySlug != "":
		slug = ctx.CategorySlug
	default:
		return "Coloring Pages"
	}
	return util.FormatSlugToName(slug)
}

// themeParkName resolves {themeParkName}: theme-park slug, then the raw
// category parameter.
func themeParkName(ctx Context) string {
	slug := ""
	switch {
	case ctx.ThemePark != nil && ctx.ThemePark.Slug != "":
		slug = ctx.ThemePark.Slug
	case ctx.CategorySlug != "":
		slug = ctx.CategorySlug
	default:
		return "Theme Parks"
	}
	return util.FormatSlugToName(slug)
}

// pageTitle resolves {title} from the coloring page, appending the
// formatted slug in parentheses when it differs from the title.
func pageTitle(ctx Context) string {
	if ctx.ColoringPage == nil {
		return "Coloring Page"
	}

	title := ctx.ColoringPage.Title
	if ctx.ColoringPage.Slug != "" {
		formatted := util.FormatSlugToName(ctx.ColoringPage.Slug)
		if !strings.EqualFold(formatted, title) {
			title += " (" + formatted + ")"
		}
	}
	return title
}

// difficultyText resolves {difficultyText} to " <Difficulty> difficulty" or "".
func difficultyText(ctx Context) string {
	if ctx.ColoringPage == nil || ctx.ColoringPage.Difficulty == "" {
		return ""
	}
	return " " + capitalizeFirst(ctx.ColoringPage.Difficulty) + " difficulty"
}

// ageText resolves {ageText} to ", perfect for ages <range>" or "".
func ageText(ctx Context) string {
	if ctx.ColoringPage == nil || ctx.ColoringPage.AgeRange == "" {
		return ""
	}
	return ", perfect for ages " + ctx.ColoringPage.AgeRange
}

// styleThemeText resolves {styleThemeText}: " <style> <theme>" when both are
// present, whichever exists otherwise, "" when neither does.
func styleThemeText(ctx Context) string {
	if ctx.ColoringPage == nil {
		return ""
	}
	style, theme := ctx.ColoringPage.Style, ctx.ColoringPage.Theme
	switch {
	case style != "" && theme != "":
		return " " + style + " " + theme
	case style != "":
		return " " + style
	case theme != "":
		return " " + theme
	}
	return ""
}

// highlightPhrase resolves {highlightPhrase}: category phrase, theme-park
// phrase, or "". Non-empty values carry a leading space so templates can
// reference the placeholder flush after punctuation.
func highlightPhrase(ctx Context) string {
	phrase := ""
	if ctx.Category != nil && ctx.Category.HighlightPhrase != "" {
		phrase = ctx.Category.HighlightPhrase
	} else if ctx.ThemePark != nil && ctx.ThemePark.HighlightPhrase != "" {
		phrase = ctx.ThemePark.HighlightPhrase
	}
	if phrase == "" {
		return ""
	}
	return " " + phrase
}
