// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package synth

import "strings"

// sampleContent maps well-known placeholder names to example values used
// for gallery previews, where no user prompt exists yet. Keys are upper
// case; lookups normalize the placeholder name before consulting the table.
var sampleContent = map[string]string{
	"HEADLINE":       "Make Every Launch Unforgettable",
	"TITLE":          "The Big Reveal",
	"SUBTITLE":       "Crafted for brands that stand out",
	"TAGLINE":        "Bold ideas, beautifully delivered",
	"DESCRIPTION":    "Join us for an experience designed around you — great people, great energy, and something new to discover.",
	"CONTENT":        "From first impression to lasting memory, every detail has been considered so you can focus on what matters.",
	"BODY":           "We sweat the small stuff so your message lands exactly the way you imagined it.",
	"CTA":            "Get Started Today",
	"CALL_TO_ACTION": "Get Started Today",
	"BUTTON_TEXT":    "Learn More",
	"BRAND_NAME":     "Acme Studio",
	"COMPANY_NAME":   "Acme Studio",
	"EVENT_NAME":     "Summer Showcase 2026",
	"EVENT_DATE":     "Saturday, July 18",
	"DATE":           "July 18, 2026",
	"TIME":           "7:00 PM",
	"LOCATION":       "Riverside Pavilion",
	"VENUE":          "Riverside Pavilion",
	"ADDRESS":        "123 Harbor Street",
	"CITY":           "Portland",
	"PRICE":          "$29",
	"DISCOUNT":       "20% OFF",
	"OFFER":          "Limited seats — book early",
	"PHONE":          "(555) 010-0199",
	"EMAIL":          "hello@acme.studio",
	"WEBSITE":        "acme.studio",
	"SOCIAL_HANDLE":  "@acmestudio",
	"FOOTER_TEXT":    "© 2026 Acme Studio. All rights reserved.",
	"YEAR":           "2026",
}

// SampleContent returns example values for each placeholder name, for
// previews rendered without a prompt. Names absent from the table fall
// back to "Sample <name>". Never fails and is independent of the prompt
// synthesis path.
func SampleContent(names []string) map[string]string {
	values := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := sampleContent[strings.ToUpper(name)]; ok {
			values[name] = v
			continue
		}
		values[name] = "Sample " + strings.ToLower(name)
	}
	return values
}
