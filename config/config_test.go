package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"AETHER_DB_PATH", "AETHER_HISTORY_LIMIT", "AETHER_LOG_LEVEL", "AETHER_OUTPUT_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AETHER_DB_PATH", "/tmp/designer.db")
	t.Setenv("AETHER_HISTORY_LIMIT", "10")
	t.Setenv("AETHER_LOG_LEVEL", "debug")
	t.Setenv("AETHER_OUTPUT_DIR", "/tmp/out")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/designer.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("AETHER_HISTORY_LIMIT", "zero")
	if _, err := Load(); err == nil {
		t.Error("non-numeric history limit should fail")
	}

	t.Setenv("AETHER_HISTORY_LIMIT", "0")
	if _, err := Load(); err == nil {
		t.Error("non-positive history limit should fail")
	}

	t.Setenv("AETHER_HISTORY_LIMIT", "5")
	t.Setenv("AETHER_LOG_LEVEL", "shouting")
	if _, err := Load(); err == nil {
		t.Error("unknown log level should fail")
	}
}
