package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
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

			if err := svc.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted #%d\n", ui.IconDone, id)
			return nil
		},
	}

	return cmd
}
