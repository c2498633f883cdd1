// ABOUTME: Seeded workout catalog shared by every account.
// ABOUTME: Templates are immutable; users track their own copies.
package workout

import "github.com/harperreed/fitverse/internal/models"

func strPtr(s string) *string { return &s }

// Catalog returns the built-in workout templates.
func Catalog() []models.WorkoutTemplate {
	return []models.WorkoutTemplate{
		{
			ID:         "1",
			Title:      "Full Body HIIT",
			Category:   "HIIT",
			Duration:   "30 min",
			Calories:   320,
			Difficulty: models.LevelIntermediate,
			Image:      "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Exercises: []models.Exercise{
				{ID: "1-1", Name: "Jumping Jacks", Sets: 3, Reps: 20},
				{ID: "1-2", Name: "Burpees", Sets: 3, Reps: 10},
				{ID: "1-3", Name: "Mountain Climbers", Sets: 3, Reps: 20},
				{ID: "1-4", Name: "Push-ups", Sets: 3, Reps: 15},
			},
		},
		{
			ID:         "2",
			Title:      "Core Crusher",
			Category:   "Strength",
			Duration:   "25 min",
			Calories:   280,
			Difficulty: models.LevelAdvanced,
			Image:      "https://images.unsplash.com/photo-1571019613914-85f342c6a11e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Exercises: []models.Exercise{
				{ID: "2-1", Name: "Crunches", Sets: 3, Reps: 20},
				{ID: "2-2", Name: "Plank", Sets: 3, Reps: 1, Duration: strPtr("1 min")},
				{ID: "2-3", Name: "Russian Twists", Sets: 3, Reps: 15},
				{ID: "2-4", Name: "Leg Raises", Sets: 3, Reps: 12},
			},
		},
		{
			ID:         "3",
			Title:      "Morning Yoga Flow",
			Category:   "Yoga",
			Duration:   "20 min",
			Calories:   150,
			Difficulty: models.LevelBeginner,
			Image:      "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Exercises: []models.Exercise{
				{ID: "3-1", Name: "Downward Dog", Sets: 1, Reps: 1, Duration: strPtr("1 min")},
				{ID: "3-2", Name: "Warrior I", Sets: 1, Reps: 1, Duration: strPtr("1 min")},
				{ID: "3-3", Name: "Child's Pose", Sets: 1, Reps: 1, Duration: strPtr("1 min")},
				{ID: "3-4", Name: "Cat-Cow Stretch", Sets: 1, Reps: 10},
			},
		},
		{
			ID:         "4",
			Title:      "Cardio Blast",
			Category:   "Cardio",
			Duration:   "35 min",
			Calories:   400,
			Difficulty: models.LevelIntermediate,
			Image:      "https://images.unsplash.com/photo-1538805060514-97d9cc17730c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Exercises: []models.Exercise{
				{ID: "4-1", Name: "Jogging", Sets: 1, Reps: 1, Duration: strPtr("10 min")},
				{ID: "4-2", Name: "High Knees", Sets: 3, Reps: 30},
				{ID: "4-3", Name: "Jumping Rope", Sets: 1, Reps: 1, Duration: strPtr("5 min")},
				{ID: "4-4", Name: "Box Jumps", Sets: 3, Reps: 15},
			},
		},
	}
}
