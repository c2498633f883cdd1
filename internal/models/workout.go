// ABOUTME: Workout catalog and tracking models.
// ABOUTME: Templates are immutable; tracked copies carry completion state.
package models

import "strconv"

// Exercise is one movement inside a workout. On catalog templates the
// Completed flag is always false; tracked copies flip it per user.
type Exercise struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Duration  *string `json:"duration,omitempty"`
	Weight    *int    `json:"weight,omitempty"`
	Completed bool    `json:"completed,omitempty"`
}

// WorkoutTemplate is an entry in the shared workout catalog.
type WorkoutTemplate struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Category   string       `json:"category"`
	Duration   string       `json:"duration"`
	Calories   int          `json:"calories"`
	Difficulty FitnessLevel `json:"difficulty"`
	Image      string       `json:"image,omitempty"`
	Exercises  []Exercise   `json:"exercises"`
}

// Clone returns a copy of the template with its own exercise slice.
func (t WorkoutTemplate) Clone() WorkoutTemplate {
	c := t
	c.Exercises = append([]Exercise(nil), t.Exercises...)
	return c
}

// TrackedWorkout is a per-user copy of a template with completion state.
// Completed is true when every exercise is completed, or when the user
// completes the whole workout in one action.
type TrackedWorkout struct {
	WorkoutTemplate
	Completed     bool   `json:"completed"`
	DateCompleted string `json:"date_completed,omitempty"` // YYYY-MM-DD
}

// NewTrackedWorkout copies a template into a fresh tracked workout with
// all exercises uncompleted.
func NewTrackedWorkout(t WorkoutTemplate) *TrackedWorkout {
	w := &TrackedWorkout{WorkoutTemplate: t}
	w.Exercises = make([]Exercise, len(t.Exercises))
	for i, e := range t.Exercises {
		e.Completed = false
		w.Exercises[i] = e
	}
	return w
}

// Clone returns a copy of the workout with its own exercise slice.
func (w TrackedWorkout) Clone() TrackedWorkout {
	c := w
	c.WorkoutTemplate = w.WorkoutTemplate.Clone()
	return c
}

// AllExercisesCompleted reports whether every exercise is done.
// A workout with no exercises is never auto-completed.
func (w *TrackedWorkout) AllExercisesCompleted() bool {
	if len(w.Exercises) == 0 {
		return false
	}
	for _, e := range w.Exercises {
		if !e.Completed {
			return false
		}
	}
	return true
}

// ProgressRecord aggregates one calendar day of completed workouts.
// There is at most one record per user per day; same-day completions
// accumulate into the existing record.
type ProgressRecord struct {
	Date                 string `json:"date"` // YYYY-MM-DD
	WorkoutsCompleted    int    `json:"workouts_completed"`
	TotalCaloriesBurned  int    `json:"total_calories_burned"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
}

// ParseDurationMinutes extracts the leading integer from a duration
// label like "30 min". A label with no leading integer yields zero so
// progress math stays total.
func ParseDurationMinutes(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
