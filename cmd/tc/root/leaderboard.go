package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb", "top"},
		Short:   "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries := svc.Leaderboard()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Leaderboard"))
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nobody has logged in yet."))
				return nil
			}

			for i, e := range entries {
				last := "never"
				if !e.LastActivity.IsZero() {
					last = e.LastActivity.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.Rank(i+1),
					ui.Key.Render(e.Nickname),
					fmt.Sprintf("%d tasks (%.0f%%)", e.CompletedCount, e.CompletionRate),
					ui.Muted.Render("last: "+last))
			}
			return nil
		},
	}

	return cmd
}
