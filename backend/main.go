// ABOUTME: Entry point for the campus capacity modeler backend service
// ABOUTME: Provides HTTP API for campus geometry, capacity, and scenario modeling

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/cache"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/config"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/handlers"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/logger"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/middleware"
)

func main() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		// Not an error: production deployments set real env vars
		slog.Debug("No .env file found")
	}

	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Campus Capacity Modeler Backend")
	if cfg.VSphereConfigured() {
		slog.Info("vSphere configured", "host", cfg.VSphereHost, "datacenter", cfg.VSphereDatacenter)
	} else {
		slog.Info("vSphere not configured, manual campus editing only")
	}

	// Initialize cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c)

	// Preload a campus document when one is configured
	if cfg.CampusFile != "" {
		if err := h.LoadCampusFile(cfg.CampusFile); err != nil {
			slog.Error("Failed to load campus file", "path", cfg.CampusFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Campus file loaded", "path", cfg.CampusFile)
	}

	// Shared middleware
	corsMW := middleware.CORS(cfg.CORSAllowedOrigins)
	chain := []func(http.HandlerFunc) http.HandlerFunc{middleware.LogRequest, corsMW}
	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		chain = append(chain, middleware.RateLimit(limiter, middleware.ClientIP))
		slog.Info("Rate limiting enabled", "per_minute", cfg.RateLimitPerMinute)
	}

	// Register routes; method matching uses Go 1.22+ router patterns
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, chain...))
	}

	// CORS preflight never carries a useful method pattern, so handle
	// OPTIONS for the whole API surface in one place.
	mux.HandleFunc("OPTIONS /api/v1/", corsMW(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
