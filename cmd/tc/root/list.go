package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the task catalog with your completion marks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := svc.Catalog().Tasks()
			if category != "" {
				tasks = svc.Catalog().ByCategory(category)
			}

			user := svc.Progress().CurrentUser()
			heading := "Tasks"
			if user != "" {
				heading = "Tasks — " + user
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconParty, heading))
			for _, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Checkbox(svc.Progress().IsTaskCompleted(t.ID)),
					ui.Muted.Render("#"+t.ID),
					t.Title)
			}

			if user != "" {
				stats := svc.CompletionStats()
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", ui.Ring(stats.Percentage)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only tasks in this category")

	return cmd
}
