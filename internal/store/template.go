// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists and serves the things the template manager works
// with: design templates discovered from a filesystem layout (one directory
// per category, one HTML file per template, a categories.json manifest) and
// brand kits kept in PostgreSQL.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"adforge/internal/markup"
	"adforge/internal/models"
	"adforge/internal/slug"
)

// CustomCategory is the namespace saved templates are filed under when no
// explicit id is supplied.
const CustomCategory = "custom"

const manifestFile = "categories.json"

var nameCaser = cases.Title(language.English)

// TemplateStore discovers categories and templates under a root directory
// and serves them with process-lifetime caching. The read path fails soft:
// a broken manifest or missing category directory degrades to empty or
// partial results rather than an error, because a store hiccup must not
// break the whole gallery.
type TemplateStore struct {
	dir   string
	cache *Cache

	catMu      sync.Mutex
	categories []models.Category
	catLoaded  bool
}

// manifest mirrors the categories.json layout.
type manifest struct {
	Categories []models.Category `json:"categories"`
}

// NewTemplateStore creates a template store over the given root directory,
// using cache for parsed templates.
func NewTemplateStore(dir string, cache *Cache) *TemplateStore {
	return &TemplateStore{dir: dir, cache: cache}
}

// Categories returns the ordered category list from the manifest. The first
// successful read is cached for the process lifetime; later calls return
// the cached list unconditionally. A missing or malformed manifest yields
// an empty list (logged, never an error) and is retried on the next call.
func (s *TemplateStore) Categories() []models.Category {
	s.catMu.Lock()
	defer s.catMu.Unlock()

	if s.catLoaded {
		return s.categories
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, manifestFile))
	if err != nil {
		slog.Error("category manifest unreadable", "error", err)
		return nil
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		slog.Error("category manifest malformed", "error", err)
		return nil
	}

	s.categories = m.Categories
	s.catLoaded = true
	return s.categories
}

// List returns all templates, or only those of one category when the
// filter is non-empty. A category directory that does not exist is skipped
// with a warning — partial results always beat total failure.
func (s *TemplateStore) List(category string) []models.Template {
	var ids []string
	if category != "" {
		if !validCategory(category) {
			slog.Warn("rejected category filter", "category", category)
			return nil
		}
		ids = []string{category}
	} else {
		for _, c := range s.Categories() {
			ids = append(ids, c.ID)
		}
	}

	var templates []models.Template
	for _, cat := range ids {
		entries, err := os.ReadDir(filepath.Join(s.dir, cat))
		if err != nil {
			slog.Warn("category directory unavailable, skipping", "category", cat, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
				continue
			}
			id := cat + "/" + strings.TrimSuffix(entry.Name(), ".html")
			if t := s.Load(id); t != nil {
				templates = append(templates, *t)
			}
		}
	}
	return templates
}

// Load returns the template with the given "category/slug" id, or nil when
// no such template exists. Cache hits return immediately; misses read and
// parse the markup file, insert the result, and return it. A read failure
// is treated as not-found so discovery loops stay resilient.
func (s *TemplateStore) Load(id string) *models.Template {
	if !validID(id) {
		slog.Warn("rejected template id", "id", id)
		return nil
	}

	if t := s.cache.Get(id); t != nil {
		return t
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(id)+".html"))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("template read failed", "id", id, "error", err)
		}
		return nil
	}

	t := s.parse(id, string(raw))
	s.cache.Put(id, t)
	return t
}

// Save writes a new template's markup to the store and inserts the parsed
// Template into the cache under the assigned id. When customID is empty the
// id is derived from the template name under the custom/ namespace. Write
// failures are returned to the caller — a failed save must not look like a
// success. The category manifest is not touched, so templates saved under a
// category the manifest doesn't know are not discoverable via List.
func (s *TemplateStore) Save(t models.Template, customID string) (string, error) {
	id := customID
	if id == "" {
		id = CustomCategory + "/" + slug.Generate(t.Name)
	}
	if !validID(id) {
		return "", fmt.Errorf("invalid template id %q", id)
	}

	path := filepath.Join(s.dir, filepath.FromSlash(id)+".html")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create template directory: %w", err)
	}

	// Write to a temporary file and rename so a concurrent reader never
	// observes a partially written template.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmpl-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.WriteString(t.HTMLContent); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write template: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close template: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store template: %w", err)
	}

	parsed := s.parse(id, t.HTMLContent)
	if t.Name != "" {
		parsed.Name = t.Name
	}
	if t.Description != "" {
		parsed.Description = t.Description
	}
	parsed.PreviewURL = t.PreviewURL
	parsed.ThumbnailURL = t.ThumbnailURL
	s.cache.Put(id, parsed)

	slog.Info("template saved", "id", id)
	return id, nil
}

// Invalidate drops a template from the cache so the next Load re-reads it
// from disk. Used by the fsnotify watcher and by tests.
func (s *TemplateStore) Invalidate(id string) {
	s.cache.Invalidate(id)
}

// ReloadCategories clears the cached manifest so the next Categories call
// re-reads it.
func (s *TemplateStore) ReloadCategories() {
	s.catMu.Lock()
	defer s.catMu.Unlock()
	s.catLoaded = false
	s.categories = nil
}

// parse builds a Template record from raw markup, deriving name and
// description from the id and recomputing placeholders and features.
func (s *TemplateStore) parse(id, html string) *models.Template {
	category, name := splitID(id)
	return &models.Template{
		ID:           id,
		Name:         name,
		Category:     category,
		Description:  fmt.Sprintf("A %s design template", category),
		HTMLContent:  html,
		Placeholders: markup.Placeholders(html),
		Features:     markup.Classify(html),
	}
}

// splitID breaks "category/slug" into the category id and a display name
// derived from the slug ("summer-sale" → "Summer Sale").
func splitID(id string) (category, name string) {
	category, rest, _ := strings.Cut(id, "/")
	name = nameCaser.String(strings.ReplaceAll(rest, "-", " "))
	return category, name
}

// validCategory accepts a single path segment: no separators, no parent
// references, so a filter can never list outside the store root.
func validCategory(category string) bool {
	return category != "" &&
		!strings.Contains(category, "/") &&
		!strings.Contains(category, "\\") &&
		!strings.Contains(category, "..")
}

// validID accepts "category/slug" ids and rejects anything that could
// escape the store root.
func validID(id string) bool {
	if id == "" || strings.Contains(id, "..") || strings.HasPrefix(id, "/") {
		return false
	}
	parts := strings.Split(id, "/")
	if len(parts) != 2 {
		return false
	}
	return parts[0] != "" && parts[1] != ""
}
