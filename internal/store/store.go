// ABOUTME: Key-value store interface and record key layout.
// ABOUTME: Values are JSON; malformed records read back as absent.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a key has no record.
var ErrNotFound = errors.New("record not found")

// Store is the durable key-value contract shared by all backends.
// Values are JSON-serialized domain objects.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Record key layout. Per-user records are scoped by user ID; the posts
// feed is a single shared record.
const (
	SessionKey = "session:current"
	PostsKey   = "posts"

	UserPrefix = "user:"
)

func UserKey(id string) string { return UserPrefix + id }

func WorkoutsKey(userID string) string { return "workouts:" + userID }

func ProgressKey(userID string) string { return "progress:" + userID }

func HealthKey(userID string) string { return "health:" + userID }

func HealthHistoryKey(userID string) string { return "health_history:" + userID }

func SettingsKey(userID string) string { return "settings:" + userID }

// SetJSON marshals v and stores it at key.
func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}

// GetJSON loads and unmarshals the record at key. A missing or
// malformed record reports false; corruption is treated as absence
// rather than surfaced as an error.
func GetJSON[T any](s Store, key string) (*T, bool) {
	data, err := s.Get(key)
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitverse")
}
