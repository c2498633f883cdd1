// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your fitness data
through a standardized protocol. The server communicates via stdin/stdout
and acts as the currently signed-in user.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitverse": {
        "command": "fitverse",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_catalog       Browse the workout catalog
  list_workouts      List tracked workouts
  add_workout        Add a catalog workout
  complete_workout   Complete a workout and log progress
  track_exercise     Flag a single exercise done
  get_progress       Get daily progress records
  log_health         Record today's health metrics
  get_feed           Read the social feed
  create_post        Publish a post
  ask_coach          Ask the AI fitness coach

AVAILABLE RESOURCES:

  fitverse://progress         Daily progress totals
  fitverse://health/history   Daily health snapshots
  fitverse://feed             Community posts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(accounts, workouts, healthSvc, socialSvc, gateway)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
