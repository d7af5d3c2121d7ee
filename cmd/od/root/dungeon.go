package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func newDungeonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dungeon",
		Short: "Manage dungeons (multi-step timed challenges)",
	}
	cmd.AddCommand(
		newDungeonAddCmd(),
		newDungeonListCmd(),
		newDungeonStartCmd(),
		newDungeonCheckCmd(),
		newDungeonClearCmd(),
	)
	return cmd
}

func newDungeonAddCmd() *cobra.Command {
	var difficulty int
	var xp int
	var challenges []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a dungeon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			d, err := svc.AddDungeon(ctx, engine.AddDungeonInput{
				Title:      args[0],
				Difficulty: difficulty,
				XP:         xp,
				Challenges: challenges,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d %s %s\n",
				ui.IconCastle, ui.Good.Render("Created"), d.ID, d.Title,
				ui.Muted.Render(fmt.Sprintf("(difficulty %d, %d XP, %d challenges)", d.Difficulty, d.XP, len(challenges))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&difficulty, "diff", "d", 1, "Difficulty (1-5)")
	cmd.Flags().IntVar(&xp, "xp", 0, "Base XP (default difficulty*100)")
	cmd.Flags().StringArrayVarP(&challenges, "challenge", "c", nil, "Challenge step (repeatable)")

	return cmd
}

func newDungeonListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dungeons and their challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			dungeons, err := svc.Dungeons(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(dungeons) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No dungeons yet."))
				return nil
			}
			for _, d := range dungeons {
				state := ui.Warn.Render("not started")
				if d.Completed {
					state = ui.Good.Render("cleared")
				} else if d.StartTime != nil {
					state = ui.H2.Render("in progress")
				}
				fmt.Fprintf(out, "%s #%d %s %s %s\n", ui.IconCastle, d.ID, d.Title, state,
					ui.Muted.Render(fmt.Sprintf("(%d XP)", d.XP)))
				challenges, err := svc.DungeonChallenges(ctx, d.ID)
				if err != nil {
					return err
				}
				for _, c := range challenges {
					mark := "[ ]"
					if c.Completed {
						mark = "[x]"
					}
					fmt.Fprintf(out, "    %s %d. %s\n", mark, c.Position+1, c.Title)
				}
			}
			return nil
		},
	}

	return cmd
}

func newDungeonStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Start the dungeon timer",
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

			d, err := svc.StartDungeon(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Started #%d %s. The clock is running!\n", ui.IconBolt, d.ID, d.Title)
			return nil
		},
	}

	return cmd
}

func newDungeonCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <dungeon-id> <challenge-id>",
		Short: "Toggle a challenge's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("dungeon id and challenge id are required")
			}
			for _, a := range args {
				if _, err := strconv.ParseInt(a, 10, 64); err != nil {
					return errors.New("ids must be integers")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dungeonID, _ := strconv.ParseInt(args[0], 10, 64)
			challengeID, _ := strconv.ParseInt(args[1], 10, 64)
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			challenges, err := svc.ToggleChallenge(ctx, dungeonID, challengeID)
			if err != nil {
				return err
			}
			done := 0
			for _, c := range challenges {
				if c.Completed {
					done++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d challenges done\n", ui.IconDone, done, len(challenges))
			return nil
		},
	}

	return cmd
}

func newDungeonClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear <id>",
		Short: "Finish a dungeon run and collect the reward",
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

			res, err := svc.CompleteDungeon(ctx, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s in %s\n",
				ui.IconCastle, ui.Good.Render("Cleared"), res.Dungeon.Title, res.TimeTaken.Round(time.Second))
			fmt.Fprintf(out, "  +%d XP base", res.BaseXP)
			if res.BonusXP > 0 {
				fmt.Fprintf(out, ", +%d speed bonus", res.BonusXP)
			}
			fmt.Fprintf(out, " = %d XP\n", res.TotalXP)
			return nil
		},
	}

	return cmd
}
