// Package main is the entry point for the AdForge template service.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adforge/internal/ai"
	"adforge/internal/cache"
	"adforge/internal/config"
	"adforge/internal/database"
	"adforge/internal/handlers"
	"adforge/internal/manager"
	"adforge/internal/router"
	"adforge/internal/store"
	"adforge/internal/synth"
)

func main() {
	// Structured logger — text output, debug level in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"templates", cfg.TemplatesDir,
	)

	// Connect to PostgreSQL (brand kits).
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (generated-output cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize the template store over the filesystem layout.
	templateStore := store.NewTemplateStore(cfg.TemplatesDir, store.NewCache())
	brandKitStore := store.NewBrandKitStore(db)

	// Optionally watch the template directory so edits show up without a
	// restart. Off by default: cached templates otherwise live for the
	// process lifetime.
	if cfg.TemplatesWatch {
		watcher, err := store.Watch(templateStore)
		if err != nil {
			slog.Error("failed to start template watcher", "error", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	// Initialize the AI provider registry. With no API keys configured the
	// registry stays empty and synthesis falls back to heuristics.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"claude": {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
	})

	// Pick the synthesis strategy: LLM-backed when a provider is active,
	// heuristics otherwise.
	var synthesizer synth.Synthesizer
	if aiRegistry.HasProvider(cfg.AIProvider) {
		synthesizer = synth.NewAI(aiRegistry)
		slog.Info("ai synthesis enabled", "provider", cfg.AIProvider)
	} else {
		synthesizer = synth.NewHeuristic()
		slog.Info("heuristic synthesis active", "available_providers", aiRegistry.Available())
	}

	// Compose the template manager façade.
	mgr := manager.New(templateStore, synthesizer)
	mgr.SetRenderCache(cache.NewRenderCache(valkeyClient, cache.DefaultRenderTTL))

	// Create handler groups with their dependencies.
	templateHandlers := handlers.NewTemplates(mgr, brandKitStore)
	brandKitHandlers := handlers.NewBrandKits(brandKitStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(templateHandlers, brandKitHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate generations that wait on LLM responses.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
