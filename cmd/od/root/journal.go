package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a daily journal",
	}
	cmd.AddCommand(
		newJournalAddCmd(),
		newJournalListCmd(),
		newJournalRmCmd(),
	)
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Write a journal entry",
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

			var moodPtr *string
			if mood != "" {
				moodPtr = &mood
			}
			res, err := svc.AddJournalEntry(ctx, args[0], moodPtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Entry #%d saved: +%d XP, +%d coins\n",
				ui.IconScroll, res.Entry.ID, res.XP.XPAfter-res.XP.XPBefore, res.Coins)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood tag")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.JournalEntries(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No entries yet."))
				return nil
			}
			for _, e := range entries {
				mood := ""
				if e.Mood != nil {
					mood = ui.Muted.Render(" [" + *e.Mood + "]")
				}
				fmt.Fprintf(out, "#%d %s%s\n  %s\n",
					e.ID, ui.Muted.Render(e.CreatedAt.Format("2006-01-02 15:04")), mood, e.Content)
			}
			return nil
		},
	}

	return cmd
}

func newJournalRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an entry (costs the entry reward, doubling on rapid deletes)",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseID(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args)
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			pen, err := svc.DeleteJournalEntry(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted #%d: -%d XP, -%d coins\n",
				ui.IconWarn, id, pen.XPLost, pen.CoinsLost)
			return nil
		},
	}

	return cmd
}
