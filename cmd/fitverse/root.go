// ABOUTME: Root Cobra command for fitverse CLI.
// ABOUTME: Opens the store and wires the state containers via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/coach"
	"github.com/harperreed/fitverse/internal/config"
	"github.com/harperreed/fitverse/internal/health"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/settings"
	"github.com/harperreed/fitverse/internal/social"
	"github.com/harperreed/fitverse/internal/store"
	"github.com/harperreed/fitverse/internal/workout"
)

var (
	cfg         *config.Config
	appStore    store.Store
	accounts    *account.Service
	workouts    *workout.Service
	healthSvc   *health.Service
	socialSvc   *social.Service
	settingsSvc *settings.Service
	gateway     *coach.Gateway
)

var rootCmd = &cobra.Command{
	Use:   "fitverse",
	Short: "Personal fitness tracker with an AI coach",
	Long: `FitVerse is a CLI for tracking workouts, health metrics, and a
shared social feed, with an AI fitness coach on top.

QUICK START:

  $ fitverse register "Jane Doe" jane@example.com   # Create an account
  $ fitverse login jane@example.com                 # Sign in
  $ fitverse workout catalog                        # Browse the catalog
  $ fitverse workout add 1                          # Track a workout
  $ fitverse workout done <id>                      # Complete it
  $ fitverse progress                               # See daily totals

HEALTH:

  $ fitverse health set --heart-rate 65 --sleep 7.5  # Log today's metrics
  $ fitverse health history                          # Daily snapshots

SOCIAL:

  $ fitverse feed                       # Read the community feed
  $ fitverse post "Crushed leg day"     # Share an update
  $ fitverse like <post-id>             # Toggle a like

AI COACH:

  $ fitverse coach key <gemini-api-key>   # Store your Gemini key
  $ fitverse coach "how do I warm up?"    # Ask the coach

SYNC (CHARM BACKEND):

  With the default charm backend your data is E2E encrypted with your
  SSH key and synced through Charm Cloud.

  $ fitverse sync link      # Link device to your Charm account
  $ fitverse sync status    # Check sync status

MCP INTEGRATION:

  Run 'fitverse mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  The backend is configurable (charm, badger, sqlite) via
  ~/.config/fitverse/config.json. Charm data lives at
  ~/.local/share/charm/kv/fitverse.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		bus := notify.NewBus()
		accounts = account.NewService(appStore, account.NewStoreRepository(appStore), bus)
		workouts = workout.NewService(accounts, appStore, bus)
		healthSvc = health.NewService(accounts, appStore, bus)
		socialSvc = social.NewService(accounts, appStore, bus)
		settingsSvc = settings.NewService(accounts, appStore, bus)
		gateway = coach.NewGateway()

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}

// requireUser fails fast for commands that act as the signed-in user.
func requireUser() error {
	if !accounts.IsAuthenticated() {
		return fmt.Errorf("not signed in; run 'fitverse login <email>' first")
	}
	return nil
}
