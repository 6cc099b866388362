// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// templates_test.go exercises the template endpoints over a temp-dir store
// with the heuristic synthesizer. No PostgreSQL or Valkey required: brand
// kits are left unconfigured (nil store) except where the test says so.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"adforge/internal/manager"
	"adforge/internal/models"
	"adforge/internal/store"
	"adforge/internal/synth"
)

// newTestRouter builds a chi router with the template routes over a
// temp-dir template store.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	dir := t.TempDir()

	write := func(path, content string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	write(filepath.Join(dir, "categories.json"), `{
		"categories": [
			{"id": "banner", "name": "Banners", "description": "Display banners"}
		]
	}`)
	write(filepath.Join(dir, "banner", "summer-sale.html"),
		`<h1>{{HEADLINE}}</h1><p>{{CONTENT}}</p>`)

	s := store.NewTemplateStore(dir, store.NewCache())
	m := manager.New(s, synth.NewHeuristic())
	h := NewTemplates(m, nil)

	r := chi.NewRouter()
	r.Get("/api/categories", h.ListCategories)
	r.Get("/api/templates", h.ListTemplates)
	r.Post("/api/templates", h.SaveTemplate)
	r.Get("/api/templates/{category}/{slug}", h.GetTemplate)
	r.Get("/api/templates/{category}/{slug}/preview", h.PreviewTemplate)
	r.Post("/api/generate", h.Generate)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ---------- GET /api/categories ----------

func TestListCategoriesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].ID != "banner" {
		t.Errorf("categories: %v", resp.Categories)
	}
}

// ---------- GET /api/templates ----------

func TestListTemplatesEndpoint(t *testing.T) {
	t.Run("all templates", func(t *testing.T) {
		r := newTestRouter(t)

		rec := doRequest(t, r, http.MethodGet, "/api/templates", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}

		var resp struct {
			Templates []models.Template `json:"templates"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Templates) != 1 {
			t.Fatalf("templates: got %d, want 1", len(resp.Templates))
		}
		if resp.Templates[0].ID != "banner/summer-sale" {
			t.Errorf("ID = %q", resp.Templates[0].ID)
		}
	})

	t.Run("unknown category yields empty list not null", func(t *testing.T) {
		r := newTestRouter(t)

		rec := doRequest(t, r, http.MethodGet, "/api/templates?category=nope", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"templates":[]`) {
			t.Errorf("body: %s", rec.Body.String())
		}
	})

	t.Run("fuzzy search via q", func(t *testing.T) {
		r := newTestRouter(t)

		rec := doRequest(t, r, http.MethodGet, "/api/templates?q=summer", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "banner/summer-sale") {
			t.Errorf("search miss: %s", rec.Body.String())
		}
	})
}

// ---------- GET /api/templates/{category}/{slug} ----------

func TestGetTemplateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/api/templates/banner/summer-sale", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}

		var tmpl models.Template
		if err := json.Unmarshal(rec.Body.Bytes(), &tmpl); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if tmpl.Name != "Summer Sale" {
			t.Errorf("Name = %q", tmpl.Name)
		}
		if len(tmpl.Placeholders) != 2 {
			t.Errorf("Placeholders = %v", tmpl.Placeholders)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/api/templates/banner/missing", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rec.Code)
		}
	})
}

func TestPreviewTemplateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/templates/banner/summer-sale/preview", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var gen models.GeneratedContent
	if err := json.Unmarshal(rec.Body.Bytes(), &gen); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if strings.Contains(gen.HTMLContent, "{{") {
		t.Errorf("unresolved placeholders in preview: %q", gen.HTMLContent)
	}
	if gen.Placeholders["HEADLINE"] == "" {
		t.Error("HEADLINE sample missing")
	}
}

// ---------- POST /api/generate ----------

func TestGenerateEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestRouter(t)

		body := `{"template_id": "banner/summer-sale", "prompt": "Summer music festival with live bands"}`
		rec := doRequest(t, r, http.MethodPost, "/api/generate", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body.String())
		}

		var gen models.GeneratedContent
		if err := json.Unmarshal(rec.Body.Bytes(), &gen); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if gen.Placeholders["HEADLINE"] != "Summer Music Festival With Live Bands" {
			t.Errorf("HEADLINE = %q", gen.Placeholders["HEADLINE"])
		}
		if !strings.Contains(gen.HTMLContent, "<h1>Summer Music Festival With Live Bands</h1>") {
			t.Errorf("HTMLContent = %q", gen.HTMLContent)
		}
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		r := newTestRouter(t)

		rec := doRequest(t, r, http.MethodPost, "/api/generate", `{broken`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rec.Code)
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		r := newTestRouter(t)

		rec := doRequest(t, r, http.MethodPost, "/api/generate", `{"template_id": "banner/summer-sale"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rec.Code)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		r := newTestRouter(t)

		body := `{"template_id": "banner/missing", "prompt": "anything"}`
		rec := doRequest(t, r, http.MethodPost, "/api/generate", body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rec.Code)
		}
	})

	t.Run("brand kit requested without kit store", func(t *testing.T) {
		r := newTestRouter(t)

		body := `{"template_id": "banner/summer-sale", "prompt": "sale", "brand_kit_id": "active"}`
		rec := doRequest(t, r, http.MethodPost, "/api/generate", body)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status: got %d, want 503", rec.Code)
		}
	})
}

// ---------- POST /api/templates ----------

func TestSaveTemplateEndpoint(t *testing.T) {
	t.Run("creates a custom template", func(t *testing.T) {
		r := newTestRouter(t)

		body := `{"name": "My Banner", "category": "custom", "html_content": "<div>{{HEADLINE}}</div>"}`
		rec := doRequest(t, r, http.MethodPost, "/api/templates", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status: got %d, want 201: %s", rec.Code, rec.Body.String())
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["id"] != "custom/my-banner" {
			t.Errorf("id = %q, want %q", resp["id"], "custom/my-banner")
		}

		// Saved template is immediately retrievable.
		rec = doRequest(t, r, http.MethodGet, "/api/templates/custom/my-banner", "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET after save: got %d, want 200", rec.Code)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		r := newTestRouter(t)

		rec := doRequest(t, r, http.MethodPost, "/api/templates", `{"name": "x"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rec.Code)
		}
	})
}
