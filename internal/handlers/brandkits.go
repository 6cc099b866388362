// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adforge/internal/models"
	"adforge/internal/store"
)

// BrandKits serves brand kit CRUD endpoints.
type BrandKits struct {
	kits *store.BrandKitStore
}

// NewBrandKits creates the brand kit handler group.
func NewBrandKits(kits *store.BrandKitStore) *BrandKits {
	return &BrandKits{kits: kits}
}

// List returns all brand kits, newest first.
func (h *BrandKits) List(w http.ResponseWriter, r *http.Request) {
	kits, err := h.kits.List()
	if err != nil {
		slog.Error("brand kit list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not list brand kits.")
		return
	}
	if kits == nil {
		kits = []models.BrandKit{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"brand_kits": kits})
}

// Get returns a single brand kit by id.
func (h *BrandKits) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid brand kit id.")
		return
	}

	kit, err := h.kits.FindByID(id)
	if err != nil {
		slog.Error("brand kit lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Brand kit lookup failed.")
		return
	}
	if kit == nil {
		writeError(w, http.StatusNotFound, "Brand kit not found.")
		return
	}
	writeJSON(w, http.StatusOK, kit)
}

// brandKitRequest is the create/update body.
type brandKitRequest struct {
	Name           string `json:"name"`
	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
}

// Create inserts a new brand kit.
func (h *BrandKits) Create(w http.ResponseWriter, r *http.Request) {
	var req brandKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateBrandKit(req.Name, req.PrimaryColor, req.SecondaryColor, req.FontFamily); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	kit, err := h.kits.Create(&models.BrandKit{
		Name:           req.Name,
		LogoURL:        req.LogoURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		FontFamily:     req.FontFamily,
	})
	if err != nil {
		slog.Error("brand kit create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not create brand kit.")
		return
	}
	writeJSON(w, http.StatusCreated, kit)
}

// Update modifies a brand kit's theming fields.
func (h *BrandKits) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid brand kit id.")
		return
	}

	var req brandKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateBrandKit(req.Name, req.PrimaryColor, req.SecondaryColor, req.FontFamily); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	kit, err := h.kits.FindByID(id)
	if err != nil {
		slog.Error("brand kit lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Brand kit lookup failed.")
		return
	}
	if kit == nil {
		writeError(w, http.StatusNotFound, "Brand kit not found.")
		return
	}

	kit.Name = req.Name
	kit.LogoURL = req.LogoURL
	kit.PrimaryColor = req.PrimaryColor
	kit.SecondaryColor = req.SecondaryColor
	kit.FontFamily = req.FontFamily

	if err := h.kits.Update(kit); err != nil {
		slog.Error("brand kit update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not update brand kit.")
		return
	}
	writeJSON(w, http.StatusOK, kit)
}

// Activate makes a kit the workspace's active one.
func (h *BrandKits) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid brand kit id.")
		return
	}

	if err := h.kits.Activate(id); err != nil {
		slog.Error("brand kit activate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not activate brand kit.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes an inactive brand kit.
func (h *BrandKits) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid brand kit id.")
		return
	}

	if err := h.kits.Delete(id); err != nil {
		writeError(w, http.StatusConflict, "Cannot delete: brand kit is active or not found.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
