// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"strings"

	"adforge/internal/models"
)

// Marker substrings per feature. A flag is true iff at least one of its
// markers appears anywhere in the markup. The markers track the utility
// classes our stock templates use, so classification stays a substring
// test and never needs to parse the HTML.
var (
	transparencyMarkers = []string{"glass-effect", "backdrop-filter"}
	glowMarkers         = []string{"neon-glow", "shadow-glow"}
	motionMarkers       = []string{"animate-", "transition"}
	gradientMarkers     = []string{"gradient", "from-", "to-"}
)

// Classify inspects markup and reports which visual capabilities it
// declares. Deterministic and order-independent; a template may declare
// any subset of the four features, including none or all.
func Classify(html string) models.Features {
	return models.Features{
		Transparency: containsAny(html, transparencyMarkers),
		Glow:         containsAny(html, glowMarkers),
		Motion:       containsAny(html, motionMarkers),
		Gradient:     containsAny(html, gradientMarkers),
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
