package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	return id, nil
}

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
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

			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d %s\n",
				ui.IconDone, ui.Good.Render("Completed"), res.Task.ID, res.Task.Title)
			line := fmt.Sprintf("  +%d XP, +%d coins", res.XPAwarded, res.CoinsAwarded)
			if engine.TaskType(res.Task.Type).IsRecurring() {
				line += fmt.Sprintf("  %s streak %d", ui.IconFlame, res.Streak)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)

			if res.Boss != nil && res.Boss.Damage > 0 {
				label := ""
				switch res.Boss.Outcome {
				case engine.OutcomeWeakness:
					label = ui.Good.Render(" (weakness!)")
				case engine.OutcomeResisted:
					label = ui.Warn.Render(" (resisted)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %d boss damage%s, %d HP left\n",
					ui.IconSword, res.Boss.Damage, label, res.Boss.RemainingHP)
			}
			return nil
		},
	}

	return cmd
}
