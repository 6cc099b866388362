// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for template and generation inputs.
const (
	maxTemplateNameLen = 200
	maxTemplateHTMLLen = 500_000
	maxPromptLen       = 2_000
	maxKitNameLen      = 200
	maxFontFamilyLen   = 100
)

// hexColorRe matches 3- or 6-digit CSS hex colors.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateTemplateInput checks save-template inputs and returns the first
// error found, or "".
func validateTemplateInput(name, category, htmlContent string) string {
	if strings.TrimSpace(name) == "" {
		return "Template name is required."
	}
	if utf8.RuneCountInString(name) > maxTemplateNameLen {
		return "Template name is too long (max 200 characters)."
	}
	if strings.TrimSpace(category) == "" {
		return "Template category is required."
	}
	if strings.TrimSpace(htmlContent) == "" {
		return "Template HTML content is required."
	}
	if utf8.RuneCountInString(htmlContent) > maxTemplateHTMLLen {
		return "Template HTML content is too long (max 500,000 characters)."
	}
	return ""
}

// validateGenerate checks content generation inputs.
func validateGenerate(templateID, prompt string) string {
	if strings.TrimSpace(templateID) == "" {
		return "Template id is required."
	}
	if strings.TrimSpace(prompt) == "" {
		return "Prompt is required."
	}
	if utf8.RuneCountInString(prompt) > maxPromptLen {
		return "Prompt is too long (max 2,000 characters)."
	}
	return ""
}

// validateBrandKit checks brand kit form inputs.
func validateBrandKit(name, primary, secondary, fontFamily string) string {
	if strings.TrimSpace(name) == "" {
		return "Brand kit name is required."
	}
	if utf8.RuneCountInString(name) > maxKitNameLen {
		return "Brand kit name is too long (max 200 characters)."
	}
	if primary != "" && !hexColorRe.MatchString(primary) {
		return "Primary color must be a hex color like #7c3aed."
	}
	if secondary != "" && !hexColorRe.MatchString(secondary) {
		return "Secondary color must be a hex color like #2563eb."
	}
	if utf8.RuneCountInString(fontFamily) > maxFontFamilyLen {
		return "Font family is too long (max 100 characters)."
	}
	return ""
}
