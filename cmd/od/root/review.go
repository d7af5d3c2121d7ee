package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Weekly retrospectives",
	}
	cmd.AddCommand(newReviewAddCmd(), newReviewListCmd())
	return cmd
}

func newReviewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Write this week's review",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.AddWeeklyReview(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Review saved: +%d XP\n", ui.IconScroll, engine.WeeklyReviewXP)
			return nil
		},
	}

	return cmd
}

func newReviewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			reviews, err := svc.WeeklyReviews(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(reviews) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No reviews yet."))
				return nil
			}
			for _, r := range reviews {
				fmt.Fprintf(out, "%s %s\n  %s\n", ui.Key.Render(r.ISOWeek),
					ui.Muted.Render(r.CreatedAt.Format("2006-01-02")), r.Content)
			}
			return nil
		},
	}

	return cmd
}
