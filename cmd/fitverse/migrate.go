// ABOUTME: CLI command for migrating records between storage backends.
// ABOUTME: Copies a SQLite database into the currently configured store.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/store"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <sqlite-file>",
	Short: "Migrate a SQLite database into the current backend",
	Long: `Copy every record from a SQLite database file into the currently
configured storage backend.

Useful when switching backends, e.g. from a local sqlite store to the
synced charm backend. Existing records with the same keys are
overwritten.

USAGE:

  fitverse migrate ~/.local/share/fitverse/fitverse.db --dry-run
  fitverse migrate ~/.local/share/fitverse/fitverse.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := store.OpenSQLite(args[0])
		if err != nil {
			return fmt.Errorf("failed to open source database: %w", err)
		}
		defer src.Close()

		export, err := store.Export(src)
		if err != nil {
			return fmt.Errorf("failed to read source records: %w", err)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("Would migrate %d records:\n", len(export.Records))
			for key := range export.Records {
				fmt.Printf("  %s\n", key)
			}
			return nil
		}

		if err := store.Import(appStore, export); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d records", len(export.Records))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
