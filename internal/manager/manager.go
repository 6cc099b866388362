// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package manager is the façade external collaborators use to work with
// design templates: discovery, loading, prompt-driven content generation
// with optional brand theming, and saving custom templates. It holds no
// request state — it is a stateless pipeline over the store, the content
// synthesizer, and the theming engine.
package manager

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"adforge/internal/cache"
	"adforge/internal/markup"
	"adforge/internal/models"
	"adforge/internal/store"
	"adforge/internal/synth"
	"adforge/internal/theme"
)

// Manager composes the template store, content synthesizer, and theming
// engine into the public template operations.
type Manager struct {
	store *store.TemplateStore
	synth synth.Synthesizer

	// Optional Valkey-backed cache of generated output. Nil when Valkey
	// is not configured — generation simply runs every time.
	renderCache *cache.RenderCache
}

// New creates a manager over the given store and synthesizer.
func New(s *store.TemplateStore, sy synth.Synthesizer) *Manager {
	return &Manager{store: s, synth: sy}
}

// SetRenderCache configures the optional generated-output cache. Call
// after New when Valkey is available.
func (m *Manager) SetRenderCache(rc *cache.RenderCache) {
	m.renderCache = rc
}

// Categories returns the ordered category list. Empty on manifest failure.
func (m *Manager) Categories() []models.Category {
	return m.store.Categories()
}

// List returns templates, optionally restricted to one category.
func (m *Manager) List(category string) []models.Template {
	return m.store.List(category)
}

// Load returns a template by id, or nil when it does not exist.
func (m *Manager) Load(id string) *models.Template {
	return m.store.Load(id)
}

// Save writes a new custom template and returns the assigned id. Any
// previously cached generations for that id are dropped.
func (m *Manager) Save(ctx context.Context, t models.Template, customID string) (string, error) {
	id, err := m.store.Save(t, customID)
	if err != nil {
		return "", err
	}
	if m.renderCache != nil {
		m.renderCache.InvalidateTemplate(ctx, id)
	}
	return id, nil
}

// Generate fills the template's placeholders with content synthesized from
// the prompt, substitutes them into the markup, and applies brand theming
// when a kit is supplied. Returns nil (not an error) when the template id
// is unknown.
func (m *Manager) Generate(ctx context.Context, templateID, prompt string, kit *models.BrandKit) (*models.GeneratedContent, error) {
	t := m.store.Load(templateID)
	if t == nil {
		return nil, nil
	}

	key := cache.Key(templateID, prompt, kit)

	if m.renderCache != nil {
		if gen := m.renderCache.Get(ctx, key); gen != nil {
			return gen, nil
		}
	}

	values, err := m.synth.Synthesize(ctx, prompt, t.Placeholders)
	if err != nil {
		return nil, fmt.Errorf("synthesize content: %w", err)
	}

	html := markup.Replace(t.HTMLContent, values)
	if kit != nil {
		html = theme.Apply(html, *kit)
	}

	gen := &models.GeneratedContent{
		HTMLContent:  html,
		Placeholders: values,
	}

	if m.renderCache != nil {
		m.renderCache.Set(ctx, key, gen)
	}
	return gen, nil
}

// Preview fills the template with static sample content, for gallery
// previews rendered before the user has typed a prompt. Returns nil when
// the template id is unknown.
func (m *Manager) Preview(templateID string) *models.GeneratedContent {
	t := m.store.Load(templateID)
	if t == nil {
		return nil
	}

	values := synth.SampleContent(t.Placeholders)
	return &models.GeneratedContent{
		HTMLContent:  markup.Replace(t.HTMLContent, values),
		Placeholders: values,
	}
}

// Search fuzzy-matches templates by name and id across all categories,
// best matches first. An empty query returns nothing.
func (m *Manager) Search(query string) []models.Template {
	if query == "" {
		return nil
	}

	templates := m.store.List("")
	matches := fuzzy.FindFrom(query, templateSource(templates))

	results := make([]models.Template, 0, len(matches))
	for _, match := range matches {
		results = append(results, templates[match.Index])
	}
	return results
}

// templateSource adapts a template slice to fuzzy.Source.
type templateSource []models.Template

func (s templateSource) String(i int) string { return s[i].Name + " " + s[i].ID }
func (s templateSource) Len() int            { return len(s) }
