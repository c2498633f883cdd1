// ABOUTME: Per-user app settings with defaults and partial updates.
// ABOUTME: Privacy is the only nested section that deep-merges.
package models

// UnitSystem selects measurement units for display.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// PrivacySettings controls what other users can see.
type PrivacySettings struct {
	ShowOnlineStatus    bool `json:"show_online_status"`
	AllowFriendRequests bool `json:"allow_friend_requests"`
	ShowWorkoutActivity bool `json:"show_workout_activity"`
}

// Settings is a user's preference bundle.
type Settings struct {
	Theme         string          `json:"theme"`
	Notifications bool            `json:"notifications"`
	Units         UnitSystem      `json:"units"`
	Privacy       PrivacySettings `json:"privacy"`
}

// DefaultSettings returns the settings applied when none are stored.
func DefaultSettings() Settings {
	return Settings{
		Theme:         "dark",
		Notifications: true,
		Units:         UnitsMetric,
		Privacy: PrivacySettings{
			ShowOnlineStatus:    true,
			AllowFriendRequests: true,
			ShowWorkoutActivity: true,
		},
	}
}

// PrivacyPatch carries partial privacy updates.
type PrivacyPatch struct {
	ShowOnlineStatus    *bool `json:"show_online_status,omitempty"`
	AllowFriendRequests *bool `json:"allow_friend_requests,omitempty"`
	ShowWorkoutActivity *bool `json:"show_workout_activity,omitempty"`
}

// SettingsPatch carries partial settings updates. Top-level fields
// replace; Privacy merges field by field.
type SettingsPatch struct {
	Theme         *string       `json:"theme,omitempty"`
	Notifications *bool         `json:"notifications,omitempty"`
	Units         *UnitSystem   `json:"units,omitempty"`
	Privacy       *PrivacyPatch `json:"privacy,omitempty"`
}

// Apply merges the patch into the settings.
func (p *SettingsPatch) Apply(s *Settings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.Units != nil {
		s.Units = *p.Units
	}
	if p.Privacy != nil {
		if p.Privacy.ShowOnlineStatus != nil {
			s.Privacy.ShowOnlineStatus = *p.Privacy.ShowOnlineStatus
		}
		if p.Privacy.AllowFriendRequests != nil {
			s.Privacy.AllowFriendRequests = *p.Privacy.AllowFriendRequests
		}
		if p.Privacy.ShowWorkoutActivity != nil {
			s.Privacy.ShowWorkoutActivity = *p.Privacy.ShowWorkoutActivity
		}
	}
}
