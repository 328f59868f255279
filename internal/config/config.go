// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Maternal-health backend API
	APIBaseURL string
	APITimeout time.Duration

	// Valkey (Redis-compatible cache). Optional: the site runs without it,
	// losing only page caching and flash notifications.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// CacheTTL is how long rendered pages stay in the Valkey page cache.
	CacheTTL time.Duration
}

// DefaultAPIBaseURL is the backend REST API used when no override is set.
const DefaultAPIBaseURL = "http://localhost:8000/api"

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if the API base URL
// is not a valid absolute URL.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		// VITE_API_URL is honored for parity with the original deployment
		// environment; API_URL wins when both are set.
		APIBaseURL: envOrDefault("API_URL", envOrDefault("VITE_API_URL", DefaultAPIBaseURL)),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("API_URL %q is not an absolute URL", cfg.APIBaseURL)
	}

	cfg.APITimeout, err = durationEnv("API_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.CacheTTL, err = durationEnv("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey dial address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationEnv reads a duration environment variable given either as a
// Go duration string ("30s") or a plain number of seconds ("30").
func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a valid duration", key, v)
	}
	return d, nil
}
