// ABOUTME: CLI commands for account auth and profile management.
// ABOUTME: Covers register, login, logout, whoami, and profile updates.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitverse/internal/models"
)

var (
	registerPassword string
	loginPassword    string
)

var registerCmd = &cobra.Command{
	Use:   "register <name> <email>",
	Short: "Create an account",
	Long: `Create a new account and sign in.

The password is read from --password or prompted on stdin.

Examples:
  fitverse register "Jane Doe" jane@example.com
  fitverse register "Jane Doe" jane@example.com --password s3cret`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := registerPassword
		if password == "" {
			var err error
			password, err = promptPassword()
			if err != nil {
				return err
			}
		}

		user, err := accounts.Register(args[0], args[1], password)
		if err != nil {
			return fmt.Errorf("failed to register: %w", err)
		}

		color.Green("✓ Registered %s", user.Email)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(user.ID.String()[:8]),
			user.Name)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := loginPassword
		if password == "" {
			var err error
			password, err = promptPassword()
			if err != nil {
				return err
			}
		}

		user, err := accounts.Login(args[0], password)
		if err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}

		color.Green("✓ Signed in as %s", user.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts.Logout()
		color.Green("✓ Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := accounts.Current()
		if user == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s <%s>\n", faint.Sprint(user.ID.String()[:8]), user.Name, user.Email)
		fmt.Printf("  level: %s\n", user.FitnessLevel)
		if len(user.FitnessGoals) > 0 {
			fmt.Printf("  goals: %s\n", strings.Join(user.FitnessGoals, ", "))
		}
		if user.GeminiAPIKey != "" {
			fmt.Println("  coach: API key configured")
		}
		return nil
	},
}

var (
	profileName  string
	profileLevel string
	profileGoals []string
	profileImage string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the signed-in user's profile",
	Long: `Update profile fields. Only the flags you pass change.

Examples:
  fitverse profile --name "Jane D"
  fitverse profile --level advanced --goal "run 10k" --goal "bench 100kg"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		var patch models.ProfilePatch
		if cmd.Flags().Changed("name") {
			patch.Name = &profileName
		}
		if cmd.Flags().Changed("level") {
			if !models.IsValidFitnessLevel(profileLevel) {
				return fmt.Errorf("unknown fitness level: %s (use beginner, intermediate, or advanced)", profileLevel)
			}
			level := models.FitnessLevel(profileLevel)
			patch.FitnessLevel = &level
		}
		if cmd.Flags().Changed("goal") {
			patch.FitnessGoals = &profileGoals
		}
		if cmd.Flags().Changed("image") {
			patch.ProfileImage = &profileImage
		}

		if err := accounts.UpdateProfile(patch); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (prompted if omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted if omitted)")

	profileCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileCmd.Flags().StringVar(&profileLevel, "level", "", "fitness level (beginner, intermediate, advanced)")
	profileCmd.Flags().StringArrayVar(&profileGoals, "goal", nil, "fitness goal (repeatable, replaces existing goals)")
	profileCmd.Flags().StringVar(&profileImage, "image", "", "profile image URL")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(profileCmd)
}
