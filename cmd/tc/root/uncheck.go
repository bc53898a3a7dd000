package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newUncheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uncheck <task_id>",
		Short: "Undo a checked-off task",
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

			res, err := svc.Uncomplete(args[0])
			if err != nil {
				return err
			}

			if !res.Changed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("That task was not checked off."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%s\n", ui.Warn.Render(ui.IconUncheck+" Unchecked"), res.TaskID)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", ui.Ring(res.Stats.Percentage)))
			return nil
		},
	}

	return cmd
}
