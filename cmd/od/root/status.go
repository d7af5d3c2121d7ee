package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hero stats, boss and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.Hero(ctx)
			if err != nil {
				return err
			}
			level := engine.HeroLevel(h)
			prog := engine.ProgressToNextLevel(h.XP, level)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Hero Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%s)", level, engine.TierForLevel(level))))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (%d to next level, %.0f%%)", h.XP, prog.XPToNext, prog.PercentComplete)))
			fmt.Fprintln(out, ui.LabelValue("Health", ui.HealthText(h.Health, h.MaxHealth)))
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, h.Coins)))
			fmt.Fprintln(out, ui.LabelValue("Gems", fmt.Sprintf("%s %d", ui.IconGem, h.Gems)))
			fmt.Fprintln(out, ui.LabelValue("Skill points", h.SkillPoints))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconFlame, h.Streak, h.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", h.TasksCompleted))
			if len(h.Debuffs) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconWarn+" Debuffs"))
				for _, d := range h.Debuffs {
					fmt.Fprintf(out, "- %s (%dd left, -%d HP/day)\n", d.Kind, d.Duration, engine.ApplyDebuff(engine.DebuffKind(d.Kind)))
				}
			}
			fmt.Fprintln(out, "")

			b, err := svc.EnsureWeeklyBoss(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconSword+" Weekly Boss"))
			if b.LastDefeated != nil {
				fmt.Fprintf(out, "- %s %s\n", b.Name, ui.Good.Render("defeated!"))
			} else {
				fmt.Fprintf(out, "- %s: %d/%d HP\n", b.Name, b.CurrentHP, b.MaxHP)
			}
			fmt.Fprintln(out, "")

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}
			unlocked := 0
			for _, a := range achievements {
				if a.Unlocked {
					unlocked++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintf(out, "- %d/%d unlocked\n", unlocked, len(achievements))
			for _, a := range achievements {
				if a.Unlocked {
					fmt.Fprintf(out, "  %s %s\n", ui.IconDone, a.Title)
				}
			}

			if q := svc.SuggestQuest(ctx); q != nil {
				fmt.Fprintln(out, "")
				fmt.Fprintf(out, "%s %s %s\n", ui.IconQuest, ui.Key.Render("Suggested:"), q.Title)
			}
			return nil
		},
	}

	return cmd
}
