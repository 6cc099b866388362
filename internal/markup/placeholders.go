// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markup contains the pure text analysis run over template markup:
// placeholder extraction, placeholder substitution, and visual feature
// classification. Everything here is deterministic string work with no I/O.
package markup

import (
	"regexp"
	"strings"
)

// placeholderRe matches {{NAME}} tokens. The name may be anything that
// does not contain a closing brace, so unusual or unbalanced markup is
// never rejected — the extractor simply returns what it matches.
var placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Placeholders returns the unique placeholder names found in the markup,
// in first-occurrence order, case-sensitive. Markup without tokens yields
// an empty list.
func Placeholders(html string) []string {
	matches := placeholderRe.FindAllStringSubmatch(html, -1)

	names := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Replace substitutes every {{name}} token that has an entry in values.
// Tokens without a matching entry are left untouched.
func Replace(html string, values map[string]string) string {
	if len(values) == 0 {
		return html
	}
	return placeholderRe.ReplaceAllStringFunc(html, func(token string) string {
		name := token[2 : len(token)-2]
		if v, ok := values[name]; ok {
			return v
		}
		return token
	})
}

// HasUnresolved reports whether the markup still contains any {{...}}
// token. Used by callers that want to assert a substitution pass left
// nothing behind.
func HasUnresolved(html string) bool {
	return strings.Contains(html, "{{") && placeholderRe.MatchString(html)
}
