// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is applied
// first when present, so local development needs no exported shell state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// BaseURL is the public origin used when building share links.
	// Defaults to "http://localhost:8080".
	BaseURL string

	// StoreBackend selects the durable store: "postgres" (default) or
	// "memory" for a throwaway in-process store.
	StoreBackend string

	// DatabaseURL is the Postgres connection string.
	// Required unless StoreBackend is "memory".
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RateLimitPerMinute caps requests per client IP. Defaults to 120.
	RateLimitPerMinute int

	// MaxBodyBytes caps accepted request body size. Defaults to 1 MiB,
	// comfortably above the share-token ceiling.
	MaxBodyBytes int64
}

// Load reads configuration from the environment (and an optional .env file)
// and returns a Config. Returns an error naming any required variable that
// is not set.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		StoreBackend:       getEnv("STORE_BACKEND", "postgres"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
	}

	if cfg.StoreBackend != "postgres" && cfg.StoreBackend != "memory" {
		return Config{}, fmt.Errorf("STORE_BACKEND must be postgres or memory, got %q", cfg.StoreBackend)
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" && cfg.StoreBackend == "postgres" {
		return Config{}, fmt.Errorf("required environment variables not set: DATABASE_URL")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses an integer environment variable, falling back on absence
// or any value that fails to parse as a positive integer.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
