// ABOUTME: User repository abstraction over the key-value store.
// ABOUTME: Wraps users in a record type so the password hash persists.
package account

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/store"
)

// Repository is the account storage contract. The session service only
// needs lookup, insert, and update; any backend satisfying this works.
type Repository interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	Insert(u *models.User) error
	Update(u *models.User) error
}

// userRecord is the persisted shape of a user. Unlike the session
// record, it carries the password hash.
type userRecord struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

// StoreRepository keeps users under user:<id> keys in a Store.
type StoreRepository struct {
	store store.Store
}

// NewStoreRepository creates a repository over the given store.
func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) FindByEmail(email string) (*models.User, error) {
	keys, err := r.store.Keys()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for _, k := range keys {
		if !strings.HasPrefix(k, store.UserPrefix) {
			continue
		}
		data, err := r.store.Get(k)
		if err != nil {
			continue
		}
		var rec userRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			continue // Skip invalid entries
		}
		if rec.Email == email {
			return recordToUser(&rec), nil
		}
	}
	return nil, nil
}

func (r *StoreRepository) FindByID(id string) (*models.User, error) {
	data, err := r.store.Get(store.UserKey(id))
	if err != nil {
		return nil, nil
	}
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil
	}
	return recordToUser(&rec), nil
}

func (r *StoreRepository) Insert(u *models.User) error {
	return r.save(u)
}

func (r *StoreRepository) Update(u *models.User) error {
	return r.save(u)
}

func (r *StoreRepository) save(u *models.User) error {
	rec := userRecord{User: *u, PasswordHash: u.PasswordHash}
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return r.store.Set(store.UserKey(u.ID.String()), data)
}

func recordToUser(rec *userRecord) *models.User {
	u := rec.User
	u.PasswordHash = rec.PasswordHash
	return &u
}
