// ABOUTME: Fitverse configuration with storage backend selection.
// ABOUTME: Handles settings, data paths, and the store factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitverse/internal/store"
)

// Config stores fitverse tool configuration.
type Config struct {
	// Backend selects the storage backend: "charm" (default, cloud
	// synced), "badger" (local only), "sqlite", or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Badger
	// puts its database here; SQLite puts fitverse.db here. Supports
	// ~ expansion. Defaults to ~/.local/share/fitverse.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "charm".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "charm"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// SQLitePath returns the SQLite database path under the data dir.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.GetDataDir(), "fitverse.db")
}

// OpenStore creates a Store implementation based on the configured
// backend.
func (c *Config) OpenStore() (store.Store, error) {
	switch backend := c.GetBackend(); backend {
	case "charm":
		return store.OpenCharm()
	case "badger":
		return store.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "sqlite":
		return store.OpenSQLite(c.SQLitePath())
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitverse", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
