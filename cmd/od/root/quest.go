package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Built-in quest templates",
	}
	cmd.AddCommand(newQuestListCmd(), newQuestAcceptCmd())
	return cmd
}

func newQuestListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates you can accept",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.EvaluateQuestUnlocks(ctx); err != nil {
				return err
			}
			defs, err := svc.AvailableTemplates(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(defs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing available right now. Level up to unlock more."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Available Quests"))
			for _, d := range defs {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(d.Code), d.Quest.Title,
					ui.Muted.Render(fmt.Sprintf("(%s, %s, %s)", d.Quest.Category, d.Quest.Difficulty, d.Quest.Type)))
			}
			return nil
		},
	}

	return cmd
}

func newQuestAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <code>",
		Short: "Accept a template as a real quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("code is required")
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

			if _, err := svc.EvaluateQuestUnlocks(ctx); err != nil {
				return err
			}
			t, err := svc.AcceptQuestTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Accepted #%d %s\n", ui.IconDone, t.ID, t.Title)
			return nil
		},
	}

	return cmd
}
