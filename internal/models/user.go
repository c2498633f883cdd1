// ABOUTME: User model and fitness level enum for account data.
// ABOUTME: Defines profile fields, goals, and the coach API key slot.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FitnessLevel represents a user's self-declared training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// AllFitnessLevels returns all valid fitness levels.
var AllFitnessLevels = []FitnessLevel{
	LevelBeginner, LevelIntermediate, LevelAdvanced,
}

// IsValidFitnessLevel checks if a string is a valid fitness level.
func IsValidFitnessLevel(s string) bool {
	for _, l := range AllFitnessLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// User represents a registered account.
// PasswordHash is excluded from JSON so the persisted session record
// never carries the credential; the account repository stores it
// separately.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	ProfileImage string       `json:"profile_image,omitempty"`
	FitnessLevel FitnessLevel `json:"fitness_level"`
	FitnessGoals []string     `json:"fitness_goals,omitempty"`
	GeminiAPIKey string       `json:"gemini_api_key,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewUser creates a new User with generated UUID and beginner defaults.
func NewUser(name, email string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		FitnessLevel: LevelBeginner,
		CreatedAt:    time.Now(),
	}
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	c := *u
	if u.FitnessGoals != nil {
		c.FitnessGoals = append([]string(nil), u.FitnessGoals...)
	}
	return &c
}

// ProfilePatch carries partial profile updates. Nil fields are
// left untouched.
type ProfilePatch struct {
	Name         *string       `json:"name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	ProfileImage *string       `json:"profile_image,omitempty"`
	FitnessLevel *FitnessLevel `json:"fitness_level,omitempty"`
	FitnessGoals *[]string     `json:"fitness_goals,omitempty"`
}

// Apply merges the patch into the user.
func (p *ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.FitnessLevel != nil {
		u.FitnessLevel = *p.FitnessLevel
	}
	if p.FitnessGoals != nil {
		u.FitnessGoals = append([]string(nil), (*p.FitnessGoals)...)
	}
}
