// ABOUTME: CLI commands for the workout catalog and tracked workouts.
// ABOUTME: Covers catalog, list, add, remove, done, track, and progress.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage tracked workouts",
	Long: `Manage your tracked workouts.

COMMANDS:

  catalog     Browse the shared workout catalog
  list        List your tracked workouts
  add         Add a catalog workout to your list
  remove      Remove a tracked workout
  done        Complete a workout and log today's progress
  track       Flag a single exercise done or not done

EXAMPLES:

  fitverse workout catalog
  fitverse workout add 1
  fitverse workout track <workout-id> <exercise-id>
  fitverse workout done <workout-id>`,
}

var workoutCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the workout catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, t := range workouts.Catalog() {
			fmt.Printf("%s %s\n", faint.Sprint(t.ID), color.New(color.Bold).Sprint(t.Title))
			fmt.Printf("  %s · %s · %d kcal · %s\n",
				t.Category, t.Duration, t.Calories, t.Difficulty)
			for _, e := range t.Exercises {
				fmt.Printf("  %s %s\n", faint.Sprint("-"), exerciseLabel(e.Name, e.Sets, e.Reps, e.Duration))
			}
		}
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tracked workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		tracked := workouts.Collection()
		if len(tracked) == 0 {
			fmt.Println("No tracked workouts. Add one with 'fitverse workout add <template-id>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range tracked {
			status := faint.Sprint("in progress")
			if w.Completed {
				status = color.GreenString("done %s", w.DateCompleted)
			}
			fmt.Printf("%s %s  %s\n", faint.Sprint(w.ID), w.Title, status)
			for _, e := range w.Exercises {
				mark := " "
				if e.Completed {
					mark = "x"
				}
				fmt.Printf("  [%s] %s %s\n", mark, faint.Sprint(e.ID), e.Name)
			}
		}
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <template-id>",
	Short: "Add a catalog workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		w, err := workouts.Add(args[0])
		if err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		color.Green("✓ Added %s", w.Title)
		return nil
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:     "remove <workout-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a tracked workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		if err := workouts.Remove(args[0]); err != nil {
			return fmt.Errorf("failed to remove workout: %w", err)
		}

		color.Green("✓ Removed %s", args[0])
		return nil
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done <workout-id>",
	Short: "Complete a workout and log progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		if err := workouts.Complete(args[0]); err != nil {
			return fmt.Errorf("failed to complete workout: %w", err)
		}

		color.Green("✓ Workout complete — progress logged")
		return nil
	},
}

var trackUndo bool

var workoutTrackCmd = &cobra.Command{
	Use:   "track <workout-id> <exercise-id>",
	Short: "Flag an exercise done",
	Long: `Flag a single exercise done. When every exercise in the workout is
done, the workout itself flips to completed. Use --undo to clear the flag.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		if err := workouts.SetExerciseCompletion(args[0], args[1], !trackUndo); err != nil {
			return fmt.Errorf("failed to track exercise: %w", err)
		}

		if trackUndo {
			color.Green("✓ Exercise %s cleared", args[1])
		} else {
			color.Green("✓ Exercise %s done", args[1])
		}
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show daily workout progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		records := workouts.Progress()
		if len(records) == 0 {
			fmt.Println("No progress recorded yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			fmt.Printf("%s  %d workouts  %d kcal  %d min\n",
				faint.Sprint(r.Date),
				r.WorkoutsCompleted, r.TotalCaloriesBurned, r.TotalDurationMinutes)
		}
		return nil
	},
}

func exerciseLabel(name string, sets, reps int, duration *string) string {
	parts := []string{name}
	if sets > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", sets, reps))
	}
	if duration != nil && *duration != "" {
		parts = append(parts, *duration)
	}
	return strings.Join(parts, " · ")
}

func init() {
	workoutTrackCmd.Flags().BoolVar(&trackUndo, "undo", false, "clear the completion flag instead of setting it")

	workoutCmd.AddCommand(workoutCatalogCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutRemoveCmd)
	workoutCmd.AddCommand(workoutDoneCmd)
	workoutCmd.AddCommand(workoutTrackCmd)

	rootCmd.AddCommand(workoutCmd)
	rootCmd.AddCommand(progressCmd)
}
