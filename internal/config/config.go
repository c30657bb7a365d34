// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Bind is the address the HTTP server listens on.
	Bind string

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs session tokens. Required unless DevMode is set.
	JWTSecret string

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration

	// LogFormat selects the slog handler: "text" (tint) or "json".
	LogFormat string

	// DevMode relaxes the JWT secret requirement for local runs.
	DevMode bool
}

// Load reads configuration from the environment, loading a .env file first
// if one is present (non-fatal if missing).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Bind:      getEnvDefault("BIND", "0.0.0.0:8080"),
		DBPath:    getEnvDefault("DB_PATH", "./data/wayfarer.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogFormat: getEnvDefault("LOG_FORMAT", "text"),
		DevMode:   boolFromEnv("DEV_MODE"),
	}

	ttlHours, err := strconv.Atoi(getEnvDefault("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer")
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	if cfg.JWTSecret == "" {
		if !cfg.DevMode {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = "dev-only-change-me"
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func boolFromEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
