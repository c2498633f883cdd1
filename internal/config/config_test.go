// ABOUTME: Tests for configuration loading and the store factory.
// ABOUTME: Uses XDG env overrides to isolate the filesystem.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	c := &Config{}
	if c.GetBackend() != "charm" {
		t.Errorf("default backend should be charm, got %s", c.GetBackend())
	}

	c.Backend = "sqlite"
	if c.GetBackend() != "sqlite" {
		t.Errorf("configured backend not honored: %s", c.GetBackend())
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOpenStoreBackends(t *testing.T) {
	c := &Config{Backend: "memory"}
	s, err := c.OpenStore()
	if err != nil {
		t.Fatalf("memory backend failed: %v", err)
	}
	_ = s.Close()

	c = &Config{Backend: "sqlite", DataDir: t.TempDir()}
	s, err = c.OpenStore()
	if err != nil {
		t.Fatalf("sqlite backend failed: %v", err)
	}
	_ = s.Close()

	c = &Config{Backend: "badger", DataDir: t.TempDir()}
	s, err = c.OpenStore()
	if err != nil {
		t.Fatalf("badger backend failed: %v", err)
	}
	_ = s.Close()

	c = &Config{Backend: "bogus"}
	if _, err := c.OpenStore(); err == nil {
		t.Error("unknown backend must error")
	}
}

func TestLoadAndSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Missing config loads as defaults
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "" {
		t.Errorf("expected empty backend, got %s", cfg.Backend)
	}

	cfg.Backend = "badger"
	cfg.DataDir = "~/fitverse-data"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	if loaded.Backend != "badger" || loaded.DataDir != "~/fitverse-data" {
		t.Errorf("config did not round-trip: %+v", loaded)
	}
}
