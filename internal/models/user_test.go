// ABOUTME: Unit tests for user model, profile patches, and settings merges.
// ABOUTME: Verifies credential exclusion from serialized form.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("Demo User", "demo@example.com")

	if u.FitnessLevel != LevelBeginner {
		t.Errorf("expected beginner level, got %s", u.FitnessLevel)
	}
	if len(u.FitnessGoals) != 0 {
		t.Errorf("expected no goals, got %v", u.FitnessGoals)
	}
	if u.ID.String() == "" {
		t.Error("expected generated ID")
	}
}

func TestUserJSONExcludesPasswordHash(t *testing.T) {
	u := NewUser("Demo User", "demo@example.com")
	u.PasswordHash = "$2a$10$secret"

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("serialized user must not carry the password hash")
	}

	var got User
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}
	if got.PasswordHash != "" {
		t.Error("password hash should not round-trip through JSON")
	}
	if got.Email != u.Email || got.Name != u.Name {
		t.Error("profile fields should round-trip")
	}
}

func TestProfilePatchApply(t *testing.T) {
	u := NewUser("Demo User", "demo@example.com")

	name := "New Name"
	level := LevelAdvanced
	goals := []string{"Muscle gain"}
	patch := ProfilePatch{Name: &name, FitnessLevel: &level, FitnessGoals: &goals}
	patch.Apply(u)

	if u.Name != "New Name" {
		t.Errorf("name not applied: %s", u.Name)
	}
	if u.Email != "demo@example.com" {
		t.Errorf("email should be untouched: %s", u.Email)
	}
	if u.FitnessLevel != LevelAdvanced {
		t.Errorf("level not applied: %s", u.FitnessLevel)
	}
	if len(u.FitnessGoals) != 1 || u.FitnessGoals[0] != "Muscle gain" {
		t.Errorf("goals not applied: %v", u.FitnessGoals)
	}
}

func TestIsValidFitnessLevel(t *testing.T) {
	for _, l := range AllFitnessLevels {
		if !IsValidFitnessLevel(string(l)) {
			t.Errorf("%s should be valid", l)
		}
	}
	if IsValidFitnessLevel("elite") {
		t.Error("elite should not be valid")
	}
}

func TestSettingsPatchMerges(t *testing.T) {
	s := DefaultSettings()

	off := false
	units := UnitsImperial
	patch := SettingsPatch{
		Units: &units,
		Privacy: &PrivacyPatch{
			ShowOnlineStatus: &off,
		},
	}
	patch.Apply(&s)

	if s.Units != UnitsImperial {
		t.Errorf("units not applied: %s", s.Units)
	}
	if s.Privacy.ShowOnlineStatus {
		t.Error("privacy.show_online_status should be off")
	}
	// Sibling privacy fields survive a partial privacy patch
	if !s.Privacy.AllowFriendRequests || !s.Privacy.ShowWorkoutActivity {
		t.Error("untouched privacy fields must keep defaults")
	}
	if s.Theme != "dark" || !s.Notifications {
		t.Error("untouched top-level fields must keep defaults")
	}
}

func TestPostToggleLike(t *testing.T) {
	author := NewUser("Author", "author@example.com")
	p := NewPost(author, "hello", "")

	p.ToggleLike("u1")
	if !p.LikedBy("u1") || len(p.Likes) != 1 {
		t.Fatalf("expected one like, got %v", p.Likes)
	}

	p.ToggleLike("u1")
	if p.LikedBy("u1") || len(p.Likes) != 0 {
		t.Fatalf("expected like removed, got %v", p.Likes)
	}
}
