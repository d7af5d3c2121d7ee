package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

func newPomoCmd() *cobra.Command {
	var session int

	cmd := &cobra.Command{
		Use:   "pomo",
		Short: "Log a finished focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompletePomodoro(ctx, session)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Focus session %d logged: +%d XP\n",
				ui.IconBolt, session, res.XPAfter-res.XPBefore)
			return nil
		},
	}

	cmd.Flags().IntVarP(&session, "session", "s", 1, "Session number within this sitting")

	return cmd
}
