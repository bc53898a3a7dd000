package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tc",
	Short:         "Taskmaster — local-first party checklist with a leaderboard",
	Long:          "Taskmaster is a local-first checklist: log in with a nickname, check off tasks, and climb the shared leaderboard. All state lives in a local database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newCheckCmd(),
		newUncheckCmd(),
		newListCmd(),
		newStatsCmd(),
		newLeaderboardCmd(),
		newBoardCmd(),
		newQuoteCmd(),
		newResetCmd(),
		newTaskCmd(),
		newSettingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
