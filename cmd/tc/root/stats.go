package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your completion stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user := svc.Progress().CurrentUser()
			if user == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Log in first: tc login <nickname>"))
				return nil
			}

			stats := svc.CompletionStats()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Stats — "+user))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed", fmt.Sprintf("%d of %d", stats.Completed, stats.Total)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Ring", ui.Ring(stats.Percentage)))

			cats := svc.Catalog().Categories()
			if len(cats) > 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Categories"))
				for _, cat := range cats {
					done := 0
					tasks := svc.Catalog().ByCategory(cat)
					for _, t := range tasks {
						if svc.Progress().IsTaskCompleted(t.ID) {
							done++
						}
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(cat+":"), fmt.Sprintf("%d/%d", done, len(tasks)))
				}
			}
			return nil
		},
	}

	return cmd
}
