// Package config loads tool settings from the environment, with optional
// .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Defaults applied when the environment leaves a setting unset.
const (
	DefaultDBPath       = "aether.db"
	DefaultHistoryLimit = 50
	DefaultLogLevel     = "info"
	DefaultOutputDir    = "."
)

// Config carries the settings shared by the CLI commands.
type Config struct {
	DBPath       string
	HistoryLimit int
	LogLevel     zerolog.Level
	OutputDir    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() (*Config, error) {
	// Ignore a missing .env file, it is optional.
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:       envOr("AETHER_DB_PATH", DefaultDBPath),
		HistoryLimit: DefaultHistoryLimit,
		LogLevel:     zerolog.InfoLevel,
		OutputDir:    envOr("AETHER_OUTPUT_DIR", DefaultOutputDir),
	}

	if raw := os.Getenv("AETHER_HISTORY_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid AETHER_HISTORY_LIMIT %q", raw)
		}
		cfg.HistoryLimit = n
	}

	if raw := envOr("AETHER_LOG_LEVEL", DefaultLogLevel); raw != "" {
		level, err := zerolog.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid AETHER_LOG_LEVEL %q: %w", raw, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
