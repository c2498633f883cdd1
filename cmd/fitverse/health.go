// ABOUTME: CLI commands for health metrics.
// ABOUTME: Covers setting today's snapshot and browsing daily history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/models"
)

var (
	healthHeartRate float64
	healthBPSys     float64
	healthBPDia     float64
	healthHydration float64
	healthSleep     float64
	healthWeight    float64
	healthHeight    float64
	healthAge       int
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Track health metrics",
	Long: `Track daily health metrics.

Each 'set' stores a full snapshot for today. Setting metrics twice on
the same day overwrites that day's history entry instead of appending.

EXAMPLES:

  fitverse health set --heart-rate 65 --sleep 7.5 --weight 82.5
  fitverse health set --bp-sys 120 --bp-dia 80
  fitverse health show
  fitverse health history`,
}

var healthSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record today's metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		// Start from the current snapshot so unset flags keep their values.
		metrics := models.HealthMetrics{}
		if cur := healthSvc.Current(); cur != nil {
			metrics = *cur
		}

		if cmd.Flags().Changed("heart-rate") {
			metrics.HeartRate = healthHeartRate
		}
		if cmd.Flags().Changed("bp-sys") {
			metrics.BloodPressureSys = healthBPSys
		}
		if cmd.Flags().Changed("bp-dia") {
			metrics.BloodPressureDia = healthBPDia
		}
		if cmd.Flags().Changed("hydration") {
			metrics.Hydration = healthHydration
		}
		if cmd.Flags().Changed("sleep") {
			metrics.SleepHours = healthSleep
		}
		if cmd.Flags().Changed("weight") {
			metrics.Weight = healthWeight
		}
		if cmd.Flags().Changed("height") {
			metrics.Height = healthHeight
		}
		if cmd.Flags().Changed("age") {
			metrics.Age = healthAge
		}

		if err := healthSvc.Update(metrics); err != nil {
			return fmt.Errorf("failed to record metrics: %w", err)
		}

		color.Green("✓ Metrics recorded")
		return nil
	},
}

var healthShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		cur := healthSvc.Current()
		if cur == nil {
			fmt.Println("No metrics recorded yet.")
			return nil
		}

		printMetrics(*cur)
		return nil
	},
}

var healthHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show daily metric history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		entries := healthSvc.History()
		if len(entries) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s  hr %.0f  sleep %.1fh  weight %.1fkg\n",
				faint.Sprint(e.Date), e.HeartRate, e.SleepHours, e.Weight)
		}
		return nil
	},
}

func printMetrics(m models.HealthMetrics) {
	if m.HeartRate > 0 {
		fmt.Printf("  heart rate   %.0f bpm\n", m.HeartRate)
	}
	if m.BloodPressureSys > 0 {
		fmt.Printf("  bp           %.0f/%.0f mmHg\n", m.BloodPressureSys, m.BloodPressureDia)
	}
	if m.Hydration > 0 {
		fmt.Printf("  hydration    %.0f%%\n", m.Hydration)
	}
	if m.SleepHours > 0 {
		fmt.Printf("  sleep        %.1f h\n", m.SleepHours)
	}
	if m.Weight > 0 {
		fmt.Printf("  weight       %.1f kg\n", m.Weight)
	}
	if m.Height > 0 {
		fmt.Printf("  height       %.0f cm\n", m.Height)
	}
	if m.Age > 0 {
		fmt.Printf("  age          %d\n", m.Age)
	}
}

func init() {
	healthSetCmd.Flags().Float64Var(&healthHeartRate, "heart-rate", 0, "resting heart rate (bpm)")
	healthSetCmd.Flags().Float64Var(&healthBPSys, "bp-sys", 0, "systolic blood pressure (mmHg)")
	healthSetCmd.Flags().Float64Var(&healthBPDia, "bp-dia", 0, "diastolic blood pressure (mmHg)")
	healthSetCmd.Flags().Float64Var(&healthHydration, "hydration", 0, "hydration percentage")
	healthSetCmd.Flags().Float64Var(&healthSleep, "sleep", 0, "hours slept")
	healthSetCmd.Flags().Float64Var(&healthWeight, "weight", 0, "weight (kg)")
	healthSetCmd.Flags().Float64Var(&healthHeight, "height", 0, "height (cm)")
	healthSetCmd.Flags().IntVar(&healthAge, "age", 0, "age in years")

	healthCmd.AddCommand(healthSetCmd)
	healthCmd.AddCommand(healthShowCmd)
	healthCmd.AddCommand(healthHistoryCmd)
	rootCmd.AddCommand(healthCmd)
}
