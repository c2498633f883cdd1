// ABOUTME: Health metrics snapshot and dated history models.
// ABOUTME: History keeps at most one entry per calendar day.
package models

// HealthMetrics is one snapshot of a user's vitals and body stats.
type HealthMetrics struct {
	HeartRate        float64 `json:"heart_rate"`
	BloodPressureSys float64 `json:"blood_pressure_sys"`
	BloodPressureDia float64 `json:"blood_pressure_dia"`
	Hydration        float64 `json:"hydration"`
	SleepHours       float64 `json:"sleep_hours"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Age              int     `json:"age"`
}

// HealthHistoryEntry tags a snapshot with the day it was recorded.
// A same-day update overwrites the existing entry.
type HealthHistoryEntry struct {
	HealthMetrics
	Date string `json:"date"` // YYYY-MM-DD
}
