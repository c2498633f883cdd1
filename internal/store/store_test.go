// ABOUTME: Tests for store backends and JSON record helpers.
// ABOUTME: Backends share one conformance suite; corruption reads as absent.
package store

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/fitverse/internal/models"
)

func testBackend(t *testing.T, s Store) {
	t.Helper()

	// Missing key
	if _, err := s.Get("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for missing key, got %v", err)
	}

	// Set and get
	if err := s.Set("a", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, err := s.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(val) != `{"x":1}` {
		t.Errorf("value mismatch: %s", val)
	}

	// Overwrite
	if err := s.Set("a", []byte(`{"x":2}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	val, _ = s.Get("a")
	if string(val) != `{"x":2}` {
		t.Errorf("overwrite not visible: %s", val)
	}

	// Keys
	if err := s.Set("b", []byte(`true`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %v", keys)
	}

	// Delete is idempotent
	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("a"); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}
	if _, err := s.Get("a"); err != ErrNotFound {
		t.Errorf("deleted key should be absent, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testBackend(t, s)
}

func TestBadgerStore(t *testing.T) {
	s, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer s.Close()
	testBackend(t, s)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "fitverse.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()
	testBackend(t, s)
}

func TestJSONRoundTrip(t *testing.T) {
	s := NewMemory()

	u := models.NewUser("Demo User", "demo@example.com")
	u.FitnessGoals = []string{"Muscle gain", "Improved endurance"}

	if err := SetJSON(s, SessionKey, u); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	got, ok := GetJSON[models.User](s, SessionKey)
	if !ok {
		t.Fatal("expected stored session to load")
	}
	if got.ID != u.ID || got.Email != u.Email || got.Name != u.Name {
		t.Errorf("user mismatch: got %+v", got)
	}
	if len(got.FitnessGoals) != 2 {
		t.Errorf("goals lost in round trip: %v", got.FitnessGoals)
	}
}

func TestGetJSONMalformedRecordIsAbsent(t *testing.T) {
	s := NewMemory()

	if err := s.Set(SessionKey, []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, ok := GetJSON[models.User](s, SessionKey); ok {
		t.Error("malformed record must read back as absent")
	}
}

func TestKeyScoping(t *testing.T) {
	if WorkoutsKey("u1") == WorkoutsKey("u2") {
		t.Error("workout keys must be scoped per user")
	}
	if HealthKey("u1") == HealthHistoryKey("u1") {
		t.Error("snapshot and history keys must differ")
	}
	if UserKey("abc") != "user:abc" {
		t.Errorf("unexpected user key: %s", UserKey("abc"))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewMemory()
	_ = src.Set("user:1", []byte(`{"name":"Demo"}`))
	_ = src.Set("posts", []byte(`[]`))
	_ = src.Set("broken", []byte("{oops"))

	data, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, ok := data.Records["broken"]; ok {
		t.Error("corrupt records should be skipped on export")
	}

	out, err := data.JSON()
	if err != nil {
		t.Fatalf("JSON render failed: %v", err)
	}
	parsed, err := ParseExport(out)
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}

	dst := NewMemory()
	if err := Import(dst, parsed); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	val, err := dst.Get("user:1")
	if err != nil || string(val) != `{"name":"Demo"}` {
		t.Errorf("imported record mismatch: %s, %v", val, err)
	}

	if _, err := data.YAML(); err != nil {
		t.Errorf("YAML render failed: %v", err)
	}
}
