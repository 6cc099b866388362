// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Features reports which visual capabilities a template's markup declares.
// Each flag is derived from marker substrings in HTMLContent and is never
// set independently.
type Features struct {
	Transparency bool `json:"transparency"` // glass / backdrop-filter layering
	Glow         bool `json:"glow"`         // neon or shadow glow
	Motion       bool `json:"motion"`       // animations or transitions
	Gradient     bool `json:"gradient"`     // gradient fills
}

// Template represents a named, categorized design unit loaded from the
// template store. Its markup contains {{PLACEHOLDER}} tokens that are
// substituted with synthesized content before delivery.
//
// Placeholders and Features are derived from HTMLContent at parse time and
// are recomputed whenever the markup changes; they must not be set by hand.
type Template struct {
	ID           string   `json:"id"` // "category/slug", unique within the store
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	HTMLContent  string   `json:"html_content"`
	Placeholders []string `json:"placeholders"`
	Features     Features `json:"features"`
	PreviewURL   string   `json:"preview_url,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
}

// GeneratedContent is the result of filling a template from a prompt: the
// final markup plus the resolved placeholder values, so callers can show
// what was filled in.
type GeneratedContent struct {
	HTMLContent  string            `json:"html_content"`
	Placeholders map[string]string `json:"placeholders"`
}
