// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme rewrites generated markup to reflect a brand kit. It is
// literal text rewriting of a fixed, small set of known utility-token
// patterns — it does not parse or understand the markup's structure.
// Brand kits whose desired effect requires tokens outside this set have
// no effect; that is a documented limitation, not a defect.
package theme

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"adforge/internal/models"
)

// The stock templates style accents with a narrow palette of utility
// classes. Primary takes over gradient starts, solid backgrounds, and
// accent text; secondary takes over gradient ends. Rewritten tokens use
// arbitrary-value syntax (e.g. from-[#7c3aed]), which no pattern below
// matches, so re-applying the same kit is a no-op on colors.
var (
	gradientFromRe = regexp.MustCompile(`\bfrom-(?:purple|violet|indigo|blue)-\d{3}\b`)
	gradientToRe   = regexp.MustCompile(`\bto-(?:pink|fuchsia|blue|cyan)-\d{3}\b`)
	solidBgRe      = regexp.MustCompile(`\bbg-(?:purple|violet|indigo)-\d{3}\b`)
	accentTextRe   = regexp.MustCompile(`\btext-(?:purple|violet|indigo)-\d{3}\b`)
)

// Apply rewrites the markup's color utility tokens to embed the kit's
// colors and, when a non-default font family is set, injects a font link
// and a base font-family rule. Applying the same kit twice yields the
// same output as applying it once.
func Apply(html string, kit models.BrandKit) string {
	if kit.PrimaryColor != "" {
		primary := "[" + kit.PrimaryColor + "]"
		html = gradientFromRe.ReplaceAllString(html, "from-"+primary)
		html = solidBgRe.ReplaceAllString(html, "bg-"+primary)
		html = accentTextRe.ReplaceAllString(html, "text-"+primary)
	}
	if kit.SecondaryColor != "" {
		html = gradientToRe.ReplaceAllString(html, "to-["+kit.SecondaryColor+"]")
	}

	if kit.FontFamily != "" && kit.FontFamily != models.DefaultFontFamily {
		html = injectFont(html, kit.FontFamily)
	}

	return html
}

// injectFont adds a Google Fonts stylesheet link into the document head
// and a base font-family rule. Both are skipped when already present so
// repeated theming never stacks duplicates.
func injectFont(html, family string) string {
	link := fontLink(family)
	if !strings.Contains(html, link) {
		if idx := strings.Index(html, "</head>"); idx != -1 {
			html = html[:idx] + link + "\n" + html[idx:]
		} else {
			html = link + "\n" + html
		}
	}

	rule := fmt.Sprintf("body { font-family: '%s', sans-serif; }", family)
	if !strings.Contains(html, rule) {
		if idx := strings.Index(html, "<style>"); idx != -1 {
			at := idx + len("<style>")
			html = html[:at] + "\n" + rule + html[at:]
		} else if idx := strings.Index(html, "</head>"); idx != -1 {
			html = html[:idx] + "<style>\n" + rule + "\n</style>\n" + html[idx:]
		} else {
			html = "<style>\n" + rule + "\n</style>\n" + html
		}
	}

	return html
}

// fontLink builds the Google Fonts stylesheet URL for a font family.
func fontLink(family string) string {
	name := url.QueryEscape(family)
	// QueryEscape turns spaces into '+', which is the css2 API's separator.
	return fmt.Sprintf(
		`<link href="https://fonts.googleapis.com/css2?family=%s:wght@400;600;700&display=swap" rel="stylesheet">`,
		name,
	)
}
