package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"odyssey/internal/engine"
	"odyssey/internal/ui"
)

func newAddCmd() *cobra.Command {
	var difficulty string
	var category string
	var taskType string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
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

			t, err := svc.AddTask(ctx, engine.AddTaskInput{
				Title:      args[0],
				Category:   engine.ParseCategory(category),
				Difficulty: engine.ParseDifficulty(difficulty),
				Type:       engine.ParseTaskType(taskType),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d %s\n",
				ui.TypeIcon(t.Type), ui.Good.Render("Added"), t.ID, t.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %s\n",
				ui.LabelValue("Category", t.Category),
				ui.LabelValue("Difficulty", t.Difficulty),
				ui.LabelValue("Reward", fmt.Sprintf("%d XP, %d coins", t.XP, t.Coins)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "diff", "d", "Easy", "Difficulty (Easy|Medium|Hard|N/A)")
	cmd.Flags().StringVarP(&category, "category", "c", "Hobbies", "Category (Health|Career|Learning|Social|Finance|Hobbies|Mindfulness)")
	cmd.Flags().StringVarP(&taskType, "type", "t", "One-time", "Type (One-time|Daily|Weekly|Monthly)")

	return cmd
}
