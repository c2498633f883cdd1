// ABOUTME: CLI commands for the shared social feed.
// ABOUTME: Covers feed, post, like, and comment.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var postImage string

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Read the social feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts := socialSvc.Feed()
		if len(posts) == 0 {
			fmt.Println("The feed is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		me := ""
		if u := accounts.Current(); u != nil {
			me = u.ID.String()
		}

		for _, p := range posts {
			liked := ""
			if me != "" && p.LikedBy(me) {
				liked = color.RedString(" ♥")
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(p.ID.String()[:8]),
				color.New(color.Bold).Sprint(p.AuthorName),
				faint.Sprint(p.CreatedAt.Format("2006-01-02 15:04")))
			fmt.Printf("  %s\n", p.Content)
			fmt.Printf("  %s%s\n", faint.Sprintf("%d likes · %d comments", len(p.Likes), len(p.Comments)), liked)
			for _, c := range p.Comments {
				fmt.Printf("    %s: %s\n", faint.Sprint(c.AuthorName), c.Text)
			}
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <content>",
	Short: "Share an update",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		p, err := socialSvc.CreatePost(args[0], postImage)
		if err != nil {
			return fmt.Errorf("failed to post: %w", err)
		}

		color.Green("✓ Posted")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(p.ID.String()[:8]))
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle a like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		if err := socialSvc.ToggleLike(args[0]); err != nil {
			return fmt.Errorf("failed to toggle like: %w", err)
		}

		color.Green("✓ Like toggled")
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <post-id> <text>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		if err := socialSvc.AddComment(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to comment: %w", err)
		}

		color.Green("✓ Comment added")
		return nil
	},
}

func init() {
	postCmd.Flags().StringVar(&postImage, "image", "", "image URL to attach")

	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(commentCmd)
}
