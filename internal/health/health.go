// ABOUTME: Health state container: current snapshot and dated history.
// ABOUTME: Same-day updates overwrite the existing history entry.
package health

import (
	"fmt"
	"time"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

// Service owns the current user's latest health snapshot and history.
type Service struct {
	accounts *account.Service
	store    store.Store
	bus      *notify.Bus
	now      func() time.Time

	current *models.HealthMetrics
	history []models.HealthHistoryEntry
}

// NewService builds the health container, loads the current user's
// state, and subscribes to session changes.
func NewService(accounts *account.Service, st store.Store, bus *notify.Bus) *Service {
	s := &Service{
		accounts: accounts,
		store:    st,
		bus:      bus,
		now:      time.Now,
	}
	s.reload()

	bus.Subscribe(func(e notify.Event) {
		if e.Kind == notify.KindSession {
			s.reload()
		}
	})

	return s
}

// Current returns the latest snapshot, or nil when none is recorded.
func (s *Service) Current() *models.HealthMetrics {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// History returns the dated history, oldest first.
func (s *Service) History() []models.HealthHistoryEntry {
	out := make([]models.HealthHistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Update replaces the current snapshot and upserts today's history
// entry; a second update on the same day overwrites the first.
func (s *Service) Update(metrics models.HealthMetrics) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	s.current = &metrics

	today := s.now().Format("2006-01-02")
	entry := models.HealthHistoryEntry{HealthMetrics: metrics, Date: today}
	updated := false
	for i := range s.history {
		if s.history[i].Date == today {
			s.history[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		s.history = append(s.history, entry)
	}

	uid := user.ID.String()
	if err := store.SetJSON(s.store, store.HealthKey(uid), s.current); err != nil {
		return fmt.Errorf("persist health snapshot: %w", err)
	}
	if err := store.SetJSON(s.store, store.HealthHistoryKey(uid), s.history); err != nil {
		return fmt.Errorf("persist health history: %w", err)
	}
	s.bus.Publish(notify.Event{Kind: notify.KindHealth})
	return nil
}

func (s *Service) reload() {
	s.current = nil
	s.history = nil

	user := s.accounts.Current()
	if user == nil {
		return
	}

	uid := user.ID.String()
	if m, ok := store.GetJSON[models.HealthMetrics](s.store, store.HealthKey(uid)); ok {
		s.current = m
	}
	if h, ok := store.GetJSON[[]models.HealthHistoryEntry](s.store, store.HealthHistoryKey(uid)); ok {
		s.history = *h
	}
}
