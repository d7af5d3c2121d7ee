package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

func newBossCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boss",
		Short: "Show this week's boss",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := svc.EnsureWeeklyBoss(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSword, b.Name))
			fmt.Fprintln(out, ui.LabelValue("Week", b.Week))
			if b.LastDefeated != nil {
				fmt.Fprintln(out, ui.Good.Render("Defeated! A new boss arrives next week."))
			} else {
				fmt.Fprintln(out, ui.LabelValue("HP", fmt.Sprintf("%d/%d", b.CurrentHP, b.MaxHP)))
			}
			fmt.Fprintln(out, ui.LabelValue("Reward", fmt.Sprintf("%d XP, %d coins, %d gems", b.RewardXP, b.RewardCoins, b.RewardGems)))

			if len(b.Resistances) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Resistances"))
				cats := make([]string, 0, len(b.Resistances))
				for c := range b.Resistances {
					cats = append(cats, c)
				}
				sort.Strings(cats)
				for _, c := range cats {
					f := b.Resistances[c]
					switch {
					case f < 1:
						fmt.Fprintf(out, "- %s: %s\n", c, ui.Good.Render("weak (bonus damage)"))
					case f > 1:
						fmt.Fprintf(out, "- %s: %s\n", c, ui.Warn.Render("resistant (reduced damage)"))
					}
				}
			}
			return nil
		},
	}

	return cmd
}
