package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests yet. Try: od add \"Take a walk\""))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Quest Log"))
			for _, t := range tasks {
				extra := fmt.Sprintf("%d XP, %d coins", t.XP, t.Coins)
				if engine.TaskType(t.Type).IsRecurring() {
					extra = fmt.Sprintf("%s, %s streak %d", extra, ui.IconFlame, t.Streak)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s %s\n",
					ui.TypeIcon(t.Type), t.ID, t.Title,
					ui.DoneText(t.Completed),
					ui.Muted.Render("("+extra+")"))
			}
			return nil
		},
	}

	return cmd
}
