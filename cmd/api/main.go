package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"softsell/internal/config"
	"softsell/internal/http"
	"softsell/internal/llm"
	"softsell/internal/service"
	"softsell/internal/site"
	"softsell/internal/storage"
)

func main() {
	// Load configuration first (needed for log level). A missing upstream
	// credential fails here, at startup, not on the first chat request.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	leadRepo := storage.NewLeadRepo(db)

	// Create upstream LLM client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.SystemPrompt, cfg.LLMTimeout)

	// Create services
	relayService := service.NewRelayService(llmClient, cfg.LLMAPIKey != "")
	contactService := service.NewContactService(leadRepo)

	// Prerender the landing page
	renderer, err := site.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create site renderer: %v", err)
	}
	indexHTML, err := renderer.RenderIndex(site.DefaultContent())
	if err != nil {
		log.Fatalf("Failed to render landing page: %v", err)
	}
	slog.Info("Landing page rendered", "bytes", len(indexHTML))

	// Create router with dependencies
	deps := &http.Deps{
		RelayService:    relayService,
		ContactService:  contactService,
		DB:              db,
		RelayConfigured: cfg.LLMAPIKey != "",
		IndexHTML:       indexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "timeout", cfg.LLMTimeout.String())
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
