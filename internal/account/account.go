// ABOUTME: Session state container: login, register, logout, profile.
// ABOUTME: Restores the persisted session on construction.
package account

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

var (
	// ErrInvalidCredentials is returned when email and password do not
	// match a registered account.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailInUse is returned when registering with a taken email.
	ErrEmailInUse = errors.New("email already in use")

	// ErrNoCurrentUser is returned by per-user mutations while logged
	// out. Other state containers reuse it.
	ErrNoCurrentUser = errors.New("no user is signed in")
)

// Service owns the current authenticated identity.
type Service struct {
	store   store.Store
	repo    Repository
	bus     *notify.Bus
	current *models.User
}

// NewService builds the session container and restores a previously
// persisted session. A malformed session record is discarded. The
// session record never carries the password hash, so the restored user
// is rehydrated from the account record; otherwise a later profile
// update would overwrite the stored hash with an empty one.
func NewService(st store.Store, repo Repository, bus *notify.Bus) *Service {
	s := &Service{store: st, repo: repo, bus: bus}

	if u, ok := store.GetJSON[models.User](st, store.SessionKey); ok {
		if full, err := repo.FindByID(u.ID.String()); err == nil && full != nil {
			s.current = full
		} else {
			s.current = u
		}
	} else {
		_ = st.Delete(store.SessionKey)
	}

	return s
}

// Current returns a copy of the signed-in user, or nil.
func (s *Service) Current() *models.User {
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// IsAuthenticated reports whether a user is signed in.
func (s *Service) IsAuthenticated() bool {
	return s.current != nil
}

// Login matches email and password against registered accounts. On a
// match the account becomes current and the session is persisted with
// the credential stripped; on a miss the current user is unchanged.
func (s *Service) Login(email, password string) (*models.User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.current = u
	if err := s.persistSession(); err != nil {
		return nil, err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSession})
	return u.Clone(), nil
}

// Register creates a new beginner-level account, signs it in, and
// persists both the account record and the session.
func (s *Service) Register(name, email, password string) (*models.User, error) {
	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := models.NewUser(name, email)
	u.PasswordHash = string(hash)
	if err := s.repo.Insert(u); err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}

	s.current = u
	if err := s.persistSession(); err != nil {
		return nil, err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSession})
	return u.Clone(), nil
}

// Logout clears the current user and removes only the session record.
// Other per-user data stays in the store for the next login.
func (s *Service) Logout() {
	if s.current == nil {
		return
	}
	s.current = nil
	_ = s.store.Delete(store.SessionKey)
	s.bus.Publish(notify.Event{Kind: notify.KindSession})
}

// UpdateProfile merges the patch into the current user and persists
// both the account record and the session.
func (s *Service) UpdateProfile(patch models.ProfilePatch) error {
	if s.current == nil {
		return ErrNoCurrentUser
	}

	patch.Apply(s.current)
	if err := s.repo.Update(s.current); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	if err := s.persistSession(); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSession})
	return nil
}

// UpdateAPIKey sets the coach API key on the current user.
func (s *Service) UpdateAPIKey(key string) error {
	if s.current == nil {
		return ErrNoCurrentUser
	}

	s.current.GeminiAPIKey = key
	if err := s.repo.Update(s.current); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	if err := s.persistSession(); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSession})
	return nil
}

func (s *Service) persistSession() error {
	if err := store.SetJSON(s.store, store.SessionKey, s.current); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
