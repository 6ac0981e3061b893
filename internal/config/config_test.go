package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://poe.ninja/api/data" || cfg.League != "Sanctum" || cfg.Language != "en" {
		t.Fatalf("unexpected selectors: %#v", cfg)
	}
	if cfg.Timeout != 300*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout)
	}
	if cfg.Verbose || cfg.RaiseErrors || cfg.UseReplayMode {
		t.Fatalf("flags should default to false: %#v", cfg)
	}
	if cfg.ReplayStorePath != "out/apiclient.vcr" || cfg.ReplayStoreType != "yaml" {
		t.Fatalf("unexpected replay defaults: %#v", cfg)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ninja.yaml")
	content := `
league: Necropolis
verbose: true
timeout_seconds: 30
use_replay_mode: true
replay_store_type: bbolt
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("NINJA_LEAGUE", "Settlers")
	t.Setenv("NINJA_RAISE_ERRORS", "true")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.League != "Settlers" {
		t.Fatalf("env did not override file: league = %q", cfg.League)
	}
	if !cfg.Verbose || !cfg.RaiseErrors || !cfg.UseReplayMode {
		t.Fatalf("flags not loaded: %#v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout)
	}
	if cfg.ReplayStoreType != "bbolt" {
		t.Fatalf("store type = %q", cfg.ReplayStoreType)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"NINJA_TIMEOUT_SECONDS":      "0",
		"NINJA_SNAPSHOT_CONCURRENCY": "-1",
		"NINJA_REPLAY_STORE_TYPE":    "redis",
		"NINJA_REPLAY_RECORD_MODE":   "all",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
