// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFontFamily is the font shipped with the stock templates. Theming
// only injects font declarations when a kit names a different family.
const DefaultFontFamily = "Inter"

// BrandKit is a theming profile applied to generated output: two brand
// colors and an optional font family. At most one kit is active per
// workspace at a time.
type BrandKit struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	LogoURL        string    `json:"logo_url,omitempty"`
	PrimaryColor   string    `json:"primary_color"`   // hex, e.g. "#7c3aed"
	SecondaryColor string    `json:"secondary_color"` // hex, e.g. "#2563eb"
	FontFamily     string    `json:"font_family"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
