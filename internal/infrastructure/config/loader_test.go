package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file was not written: %v", err)
	}

	if cfg.Speech.Rate != 170 || cfg.Speech.Volume != 80 || cfg.Speech.Pitch != 50 {
		t.Errorf("speech defaults = %+v", cfg.Speech)
	}
	if cfg.Session.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.Session.TimeoutSeconds)
	}
	if cfg.History.Backend != "sqlite" || cfg.History.MaxEntries != 500 {
		t.Errorf("history defaults = %+v", cfg.History)
	}
	if cfg.Bridge.Name != "voca" {
		t.Errorf("Bridge.Name = %q, want voca", cfg.Bridge.Name)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "speech:\n  rate: 200\nhistory:\n  backend: file\n"
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Speech.Rate != 200 {
		t.Errorf("Rate = %d, want the configured 200", cfg.Speech.Rate)
	}
	if cfg.History.Backend != "file" {
		t.Errorf("Backend = %q, want file", cfg.History.Backend)
	}
	// Everything unset falls back to defaults.
	if cfg.Speech.Volume != 80 || cfg.Session.TimeoutSeconds != 10 {
		t.Errorf("hydrated config = %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("speech: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("Load() with malformed YAML should fail")
	}
}

func TestPathHonorsEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "elsewhere.yaml")
	t.Setenv("VOCA_CONFIG", custom)

	if got := NewFileLoader("").Path(); got != custom {
		t.Errorf("Path() = %q, want the VOCA_CONFIG override %q", got, custom)
	}

	// An explicit path outranks the environment.
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if got := NewFileLoader(explicit).Path(); got != explicit {
		t.Errorf("Path() = %q, want %q", got, explicit)
	}
}
