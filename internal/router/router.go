// Package router sets up all HTTP routes and middleware chains for the
// AdForge template service.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adforge/internal/handlers"
	"adforge/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. brandKits may be nil when PostgreSQL is not
// configured; the kit routes are then omitted.
func New(templates *handlers.Templates, brandKits *handlers.BrandKits) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", templates.ListCategories)

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templates.ListTemplates)
			r.Post("/", templates.SaveTemplate)
			r.Get("/{category}/{slug}", templates.GetTemplate)
			r.Get("/{category}/{slug}/preview", templates.PreviewTemplate)
		})

		// Generation may fan out to an LLM, so it gets its own limiter.
		r.Group(func(r chi.Router) {
			limiter := middleware.NewRateLimiter(30, time.Minute)
			r.Use(limiter.Middleware)
			r.Post("/generate", templates.Generate)
		})

		if brandKits != nil {
			r.Route("/brand-kits", func(r chi.Router) {
				r.Get("/", brandKits.List)
				r.Post("/", brandKits.Create)
				r.Get("/{id}", brandKits.Get)
				r.Put("/{id}", brandKits.Update)
				r.Post("/{id}/activate", brandKits.Activate)
				r.Delete("/{id}", brandKits.Delete)
			})
		}
	})

	return r
}

// healthHandler reports liveness.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
