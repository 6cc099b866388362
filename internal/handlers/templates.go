// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adforge/internal/manager"
	"adforge/internal/models"
	"adforge/internal/store"
)

// Templates serves the template discovery and generation endpoints.
type Templates struct {
	manager *manager.Manager
	kits    *store.BrandKitStore // nil when PostgreSQL is not configured
}

// NewTemplates creates the template handler group.
func NewTemplates(m *manager.Manager, kits *store.BrandKitStore) *Templates {
	return &Templates{manager: m, kits: kits}
}

// ListCategories returns the ordered category list. Manifest failures have
// already degraded to an empty list in the store, so this never errors.
func (h *Templates) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.manager.Categories()
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// ListTemplates returns templates, optionally filtered by ?category= or
// fuzzy-matched against ?q=. Unknown categories yield an empty list.
func (h *Templates) ListTemplates(w http.ResponseWriter, r *http.Request) {
	var templates []models.Template
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		templates = h.manager.Search(q)
	} else {
		templates = h.manager.List(r.URL.Query().Get("category"))
	}
	if templates == nil {
		templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

// GetTemplate returns a single template by its category/slug id.
func (h *Templates) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category") + "/" + chi.URLParam(r, "slug")
	t := h.manager.Load(id)
	if t == nil {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// PreviewTemplate returns the template filled with static sample content,
// for gallery previews rendered before the user has written a prompt.
func (h *Templates) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category") + "/" + chi.URLParam(r, "slug")
	gen := h.manager.Preview(id)
	if gen == nil {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

// generateRequest is the POST /api/generate body.
type generateRequest struct {
	TemplateID string `json:"template_id"`
	Prompt     string `json:"prompt"`
	BrandKitID string `json:"brand_kit_id,omitempty"`
}

// Generate fills a template's placeholders from the prompt and applies
// brand theming when a kit id is supplied.
func (h *Templates) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if msg := validateGenerate(req.TemplateID, req.Prompt); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	kit, errMsg, status := h.resolveKit(req.BrandKitID)
	if errMsg != "" {
		writeError(w, status, errMsg)
		return
	}

	gen, err := h.manager.Generate(r.Context(), req.TemplateID, req.Prompt, kit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Content generation failed.")
		return
	}
	if gen == nil {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}
	writeJSON(w, http.StatusOK, gen)
}

// resolveKit looks up the brand kit for a generation request. An empty id
// means no theming; "active" selects the workspace's active kit.
func (h *Templates) resolveKit(kitID string) (*models.BrandKit, string, int) {
	if kitID == "" {
		return nil, "", 0
	}
	if h.kits == nil {
		return nil, "Brand kits are not available.", http.StatusServiceUnavailable
	}

	if kitID == "active" {
		kit, err := h.kits.FindActive()
		if err != nil {
			return nil, "Brand kit lookup failed.", http.StatusInternalServerError
		}
		// No active kit is fine — generate unthemed.
		return kit, "", 0
	}

	id, err := uuid.Parse(kitID)
	if err != nil {
		return nil, "Invalid brand kit id.", http.StatusBadRequest
	}
	kit, err := h.kits.FindByID(id)
	if err != nil {
		return nil, "Brand kit lookup failed.", http.StatusInternalServerError
	}
	if kit == nil {
		return nil, "Brand kit not found.", http.StatusNotFound
	}
	return kit, "", 0
}

// saveTemplateRequest is the POST /api/templates body.
type saveTemplateRequest struct {
	ID           string `json:"id,omitempty"` // optional explicit "category/slug"
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	HTMLContent  string `json:"html_content"`
	PreviewURL   string `json:"preview_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// SaveTemplate stores a new custom template. Write failures are hard
// errors — a failed save must not look like a success.
func (h *Templates) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req saveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if msg := validateTemplateInput(req.Name, req.Category, req.HTMLContent); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := h.manager.Save(r.Context(), models.Template{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		HTMLContent:  req.HTMLContent,
		PreviewURL:   req.PreviewURL,
		ThumbnailURL: req.ThumbnailURL,
	}, req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not save template.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}
