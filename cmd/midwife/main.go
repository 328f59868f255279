// Package main is the entry point for the Holistic Family Midwife site.
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

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/cache"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/carousel"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/config"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/handlers"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/middleware"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/render"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/router"
)

func main() {
	// Structured logger shared through slog's default.
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
		"api", cfg.APIBaseURL,
	)

	// Connect to Valkey (Redis-compatible cache + flash store). The site
	// runs without it, losing only page caching and flash notifications.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, page cache and notifications disabled", "error", err)
		valkeyClient = nil
	} else {
		defer valkeyClient.Close()
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Backend API client for blog content and lead form submission.
	apiClient := api.New(cfg.APIBaseURL, cfg.APITimeout)

	// Full-page HTML cache and one-shot flash notifications in Valkey.
	pageCache := cache.NewPageCache(valkeyClient, cfg.CacheTTL)
	flashStore := flash.NewStore(valkeyClient)

	// Hero carousel rotation state, shared by all requests.
	rotator := carousel.New(carousel.DefaultSlides, carousel.DefaultInterval, carousel.DefaultCooldown)
	defer rotator.Stop()

	// Per-IP rate limit on the lead form routes.
	limiter := middleware.NewRateLimiter(10, time.Minute)
	defer limiter.Stop()

	// Create the site handler and router.
	h := handlers.New(renderer, apiClient, pageCache, flashStore, rotator)
	r := router.New(h, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
