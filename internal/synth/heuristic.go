// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package synth

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bounds for the heuristic rules. Headlines get a short punchy prefix,
// body copy gets the prompt itself up to a readable length.
const (
	maxHeadlineLen = 40
	maxContentLen  = 120
	maxExcerptLen  = 60
)

// ctaPhrase is the canonical call to action used for every CTA-like
// placeholder. Best-effort copywriting, not personalization.
const ctaPhrase = "Get Started Today"

// brandFallback is substituted when no qualifying word can be pulled
// from the prompt.
const brandFallback = "Your Brand"

// stopWords are common connective words skipped when hunting for a brand
// name in the prompt. Words of three letters or fewer are skipped anyway,
// so only longer function words need listing.
var stopWords = map[string]bool{
	"with":  true,
	"that":  true,
	"this":  true,
	"from":  true,
	"your":  true,
	"their": true,
	"have":  true,
	"will":  true,
	"about": true,
}

var titleCaser = cases.Title(language.English)

// Heuristic synthesizes placeholder values by pattern-matching placeholder
// names against a fixed category table and slicing the prompt accordingly.
// It is best-effort string manipulation, not language understanding: ties
// resolve to the first qualifying token scanned left to right, and failing
// to find one silently substitutes a fallback.
type Heuristic struct{}

// NewHeuristic returns the default prompt-driven synthesizer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Synthesize derives a value for every requested placeholder name from the
// prompt. It never fails.
func (h *Heuristic) Synthesize(_ context.Context, prompt string, names []string) (map[string]string, error) {
	prompt = strings.TrimSpace(prompt)

	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = h.valueFor(name, prompt)
	}
	return values, nil
}

// valueFor picks the synthesis rule for a single placeholder name.
// Categories are tested in a fixed order so a name like EVENT_NAME hits
// the headline rule before the brand rule sees "NAME".
func (h *Heuristic) valueFor(name, prompt string) string {
	upper := strings.ToUpper(name)

	switch {
	case containsAnyKeyword(upper, "HEADLINE", "TITLE", "EVENT", "HEADER"):
		return headlineFrom(prompt)
	case containsAnyKeyword(upper, "DESCRIPTION", "CONTENT", "BODY", "DETAILS", "MESSAGE"):
		return contentFrom(prompt)
	case containsAnyKeyword(upper, "CTA", "CALL_TO_ACTION", "BUTTON"):
		return ctaPhrase
	case containsAnyKeyword(upper, "BRAND", "COMPANY", "BUSINESS"):
		return brandFrom(prompt)
	default:
		return excerptFrom(prompt)
	}
}

// headlineFrom takes a bounded prefix of the prompt and title-cases it.
func headlineFrom(prompt string) string {
	s := prompt
	if len(s) > maxHeadlineLen {
		s = strings.TrimSpace(cutRunes(s, maxHeadlineLen))
	}
	return titleCaser.String(s)
}

// contentFrom uses the prompt verbatim when short, else truncates with an
// ellipsis.
func contentFrom(prompt string) string {
	if len(prompt) <= maxContentLen {
		return prompt
	}
	return strings.TrimSpace(cutRunes(prompt, maxContentLen-3)) + "..."
}

// brandFrom extracts the first content word from the prompt: longer than
// three letters and not a stop word, title-cased. Falls back to a fixed
// string when nothing qualifies.
func brandFrom(prompt string) string {
	for _, word := range strings.Fields(prompt) {
		w := strings.Trim(word, `.,!?:;"'()`)
		if len(w) <= 3 {
			continue
		}
		if stopWords[strings.ToLower(w)] {
			continue
		}
		return titleCaser.String(w)
	}
	return brandFallback
}

// excerptFrom is the catch-all rule for names no category matched.
func excerptFrom(prompt string) string {
	if len(prompt) <= maxExcerptLen {
		return prompt
	}
	return strings.TrimSpace(cutRunes(prompt, maxExcerptLen-3)) + "..."
}

// cutRunes cuts s to at most max bytes without splitting a multi-byte
// rune, so truncated prompts stay valid UTF-8.
func cutRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// containsAnyKeyword reports whether the (upper-cased) placeholder name
// contains any of the given keywords.
func containsAnyKeyword(upperName string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(upperName, kw) {
			return true
		}
	}
	return false
}
