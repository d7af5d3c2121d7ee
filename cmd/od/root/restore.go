package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Undo a quest completion and claw back its reward",
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

			t, err := svc.RestoreTask(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d %s\n",
				ui.IconLoop, ui.Warn.Render("Restored"), t.ID, t.Title)
			return nil
		},
	}

	return cmd
}
