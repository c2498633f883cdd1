// ABOUTME: CLI commands for the AI coach.
// ABOUTME: Covers asking questions and storing the Gemini API key.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/coach"
)

var coachCmd = &cobra.Command{
	Use:   "coach <question>",
	Short: "Ask the AI fitness coach",
	Long: `Ask the AI fitness coach a question.

The coach uses Google's Gemini API with your own API key. Store the key
once with 'fitverse coach key <key>'; it travels with your account.

EXAMPLES:

  fitverse coach key AIza...
  fitverse coach "how should I warm up before squats?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		user := accounts.Current()
		reply, err := gateway.Chat(cmd.Context(), args[0], user.GeminiAPIKey)
		if err != nil {
			switch {
			case errors.Is(err, coach.ErrMissingAPIKey):
				return fmt.Errorf("no API key configured; run 'fitverse coach key <key>' first")
			case errors.Is(err, coach.ErrInvalidAPIKey):
				return fmt.Errorf("the configured API key was rejected; set a new one with 'fitverse coach key'")
			default:
				return fmt.Errorf("coach request failed: %w", err)
			}
		}

		fmt.Println(reply)
		return nil
	},
}

var coachKeyCmd = &cobra.Command{
	Use:   "key <api-key>",
	Short: "Store your Gemini API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		if err := accounts.UpdateAPIKey(args[0]); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}

		color.Green("✓ API key stored")
		return nil
	},
}

func init() {
	coachCmd.AddCommand(coachKeyCmd)
	rootCmd.AddCommand(coachCmd)
}
