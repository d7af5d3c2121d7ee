package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"odyssey/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "od",
	Short:         "Odyssey — gamified daily productivity",
	Long:          "Odyssey is a local-first CLI/TUI productivity tracker with RPG progression: quests, streaks, a weekly boss, dungeons and a reward shop.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newRestoreCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newBossCmd(),
		newDungeonCmd(),
		newShopCmd(),
		newJournalCmd(),
		newReviewCmd(),
		newQuestCmd(),
		newPomoCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
