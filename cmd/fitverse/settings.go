// ABOUTME: CLI commands for per-user app settings.
// ABOUTME: Covers show and partial updates including privacy toggles.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/models"
)

var (
	settingsTheme         string
	settingsNotifications bool
	settingsUnits         string
	settingsOnline        bool
	settingsFriendReqs    bool
	settingsActivity      bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show app settings",
	Long: `Show and change per-user settings.

Settings fall back to defaults when signed out or never saved.

EXAMPLES:

  fitverse settings
  fitverse settings set --theme light --units imperial
  fitverse settings set --show-activity=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsSvc.Get()
		faint := color.New(color.Faint)
		fmt.Printf("theme          %s\n", s.Theme)
		fmt.Printf("notifications  %v\n", s.Notifications)
		fmt.Printf("units          %s\n", s.Units)
		fmt.Println(faint.Sprint("privacy"))
		fmt.Printf("  online status    %v\n", s.Privacy.ShowOnlineStatus)
		fmt.Printf("  friend requests  %v\n", s.Privacy.AllowFriendRequests)
		fmt.Printf("  workout activity %v\n", s.Privacy.ShowWorkoutActivity)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		var patch models.SettingsPatch
		if cmd.Flags().Changed("theme") {
			patch.Theme = &settingsTheme
		}
		if cmd.Flags().Changed("notifications") {
			patch.Notifications = &settingsNotifications
		}
		if cmd.Flags().Changed("units") {
			units := models.UnitSystem(settingsUnits)
			if units != models.UnitsMetric && units != models.UnitsImperial {
				return fmt.Errorf("unknown unit system: %s (use metric or imperial)", settingsUnits)
			}
			patch.Units = &units
		}

		var privacy models.PrivacyPatch
		privacyChanged := false
		if cmd.Flags().Changed("show-online") {
			privacy.ShowOnlineStatus = &settingsOnline
			privacyChanged = true
		}
		if cmd.Flags().Changed("friend-requests") {
			privacy.AllowFriendRequests = &settingsFriendReqs
			privacyChanged = true
		}
		if cmd.Flags().Changed("show-activity") {
			privacy.ShowWorkoutActivity = &settingsActivity
			privacyChanged = true
		}
		if privacyChanged {
			patch.Privacy = &privacy
		}

		if err := settingsSvc.Update(patch); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		color.Green("✓ Settings updated")
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsTheme, "theme", "", "UI theme (dark, light)")
	settingsSetCmd.Flags().BoolVar(&settingsNotifications, "notifications", true, "enable notifications")
	settingsSetCmd.Flags().StringVar(&settingsUnits, "units", "", "unit system (metric, imperial)")
	settingsSetCmd.Flags().BoolVar(&settingsOnline, "show-online", true, "show online status to others")
	settingsSetCmd.Flags().BoolVar(&settingsFriendReqs, "friend-requests", true, "allow friend requests")
	settingsSetCmd.Flags().BoolVar(&settingsActivity, "show-activity", true, "show workout activity to others")

	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
