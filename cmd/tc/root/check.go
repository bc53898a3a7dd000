package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <task_id>",
		Short: "Check off a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Complete(args[0])
			if err != nil {
				return err
			}

			task := svc.Catalog().ByID(res.TaskID)
			title := "#" + res.TaskID
			if task != nil {
				title = task.Title
			}

			if !res.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render("Already done:"), title)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconCheck+" Done"), title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", ui.Ring(res.Stats.Percentage)))
			if res.AllCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconParty+" ")+ui.BadgeAllDone)
			}
			return nil
		},
	}

	return cmd
}
