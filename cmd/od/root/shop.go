package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and redeem rewards",
	}
	cmd.AddCommand(
		newShopListCmd(),
		newShopBuyCmd(),
		newShopAddCmd(),
		newShopRmCmd(),
	)
	return cmd
}

func newShopListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rewards and remaining uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			rewards, err := svc.Rewards(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Reward Shop"))
			for _, r := range rewards {
				cost := fmt.Sprintf("%s %d", ui.IconCoin, r.CoinCost)
				if r.GemCost > 0 {
					cost = fmt.Sprintf("%s %d", ui.IconGem, r.GemCost)
				}
				limit := ""
				if r.RedeemLimit > 0 {
					used, err := svc.RedeemedCount(ctx, r.ID)
					if err != nil {
						return err
					}
					limit = ui.Muted.Render(fmt.Sprintf(" (%d/%d this %s)", used, r.RedeemLimit, r.Period))
				}
				tag := ""
				if r.Custom {
					tag = ui.Muted.Render(" [custom]")
				}
				fmt.Fprintf(out, "- %s %s — %s%s%s\n", ui.Key.Render(r.ID), r.Title, cost, limit, tag)
			}
			return nil
		},
	}

	return cmd
}

func newShopBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <reward-id>",
		Short: "Redeem a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward id is required")
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

			r, err := svc.RedeemReward(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Enjoy: %s\n", ui.IconDone, ui.Gold.Render(r.Title))
			return nil
		},
	}

	return cmd
}

func newShopAddCmd() *cobra.Command {
	var coins int
	var gems int
	var limit int
	var period string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom reward",
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

			r, err := svc.AddCustomReward(ctx, engine.AddCustomRewardInput{
				Title:       args[0],
				CoinCost:    coins,
				GemCost:     gems,
				RedeemLimit: limit,
				Period:      engine.RedeemPeriod(period),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconShop, ui.Key.Render(r.ID), r.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&coins, "coins", 0, "Coin cost")
	cmd.Flags().IntVar(&gems, "gems", 0, "Gem cost")
	cmd.Flags().IntVar(&limit, "limit", 0, "Redemptions per period (0 = unlimited)")
	cmd.Flags().StringVar(&period, "period", "day", "Limit window (day|week|month)")

	return cmd
}

func newShopRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a custom reward",
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

			if err := svc.DeleteCustomReward(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted custom reward %d\n", ui.IconDone, id)
			return nil
		},
	}

	return cmd
}
