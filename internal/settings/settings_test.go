// ABOUTME: Tests for the settings container.
// ABOUTME: Covers defaults, privacy deep-merge, and per-user scoping.
package settings

import (
	"testing"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

func newTestService(t *testing.T) (*Service, *account.Service) {
	t.Helper()
	st := store.NewMemory()
	bus := notify.NewBus()
	accounts := account.NewService(st, account.NewStoreRepository(st), bus)
	svc := NewService(accounts, st, bus)

	if _, err := accounts.Register("Demo User", "demo@example.com", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return svc, accounts
}

func TestDefaultsWhenLoggedOut(t *testing.T) {
	st := store.NewMemory()
	bus := notify.NewBus()
	accounts := account.NewService(st, account.NewStoreRepository(st), bus)
	svc := NewService(accounts, st, bus)

	if svc.Get() != models.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", svc.Get())
	}
	if err := svc.Update(models.SettingsPatch{}); err != account.ErrNoCurrentUser {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestUpdateMergesPrivacyOnly(t *testing.T) {
	svc, _ := newTestService(t)

	off := false
	units := models.UnitsImperial
	err := svc.Update(models.SettingsPatch{
		Units:   &units,
		Privacy: &models.PrivacyPatch{ShowWorkoutActivity: &off},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got := svc.Get()
	if got.Units != models.UnitsImperial {
		t.Errorf("units not applied: %s", got.Units)
	}
	if got.Privacy.ShowWorkoutActivity {
		t.Error("privacy patch not applied")
	}
	if !got.Privacy.ShowOnlineStatus || !got.Privacy.AllowFriendRequests {
		t.Error("untouched privacy fields must survive a partial patch")
	}
}

func TestResetOnLogoutAndReload(t *testing.T) {
	svc, accounts := newTestService(t)

	theme := "light"
	if err := svc.Update(models.SettingsPatch{Theme: &theme}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	accounts.Logout()
	if svc.Get().Theme != "dark" {
		t.Error("settings must reset to defaults when the session ends")
	}

	if _, err := accounts.Login("demo@example.com", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if svc.Get().Theme != "light" {
		t.Error("settings should reload on login")
	}
}

func TestSettingsScopedPerUser(t *testing.T) {
	svc, accounts := newTestService(t)

	theme := "light"
	if err := svc.Update(models.SettingsPatch{Theme: &theme}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	accounts.Logout()
	if _, err := accounts.Register("Other", "other@example.com", "hunter22"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if svc.Get().Theme != "dark" {
		t.Error("a new user must start from default settings")
	}
}
