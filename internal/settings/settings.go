// ABOUTME: Settings state container with per-user preference records.
// ABOUTME: Top-level fields replace; only the privacy section deep-merges.
package settings

import (
	"fmt"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

// Service owns the current user's app settings.
type Service struct {
	accounts *account.Service
	store    store.Store
	bus      *notify.Bus

	settings models.Settings
}

// NewService builds the settings container, loading the current user's
// preferences or falling back to defaults.
func NewService(accounts *account.Service, st store.Store, bus *notify.Bus) *Service {
	s := &Service{accounts: accounts, store: st, bus: bus}
	s.reload()

	bus.Subscribe(func(e notify.Event) {
		if e.Kind == notify.KindSession {
			s.reload()
		}
	})

	return s
}

// Get returns the active settings.
func (s *Service) Get() models.Settings {
	return s.settings
}

// Update merges the patch and persists the result. Top-level fields
// are replaced wholesale; the privacy section merges field by field.
func (s *Service) Update(patch models.SettingsPatch) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	patch.Apply(&s.settings)
	if err := store.SetJSON(s.store, store.SettingsKey(user.ID.String()), s.settings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSettings})
	return nil
}

// reload resets to defaults, then applies the current user's stored
// preferences if any.
func (s *Service) reload() {
	s.settings = models.DefaultSettings()

	user := s.accounts.Current()
	if user == nil {
		return
	}
	if stored, ok := store.GetJSON[models.Settings](s.store, store.SettingsKey(user.ID.String())); ok {
		s.settings = *stored
	}
}
