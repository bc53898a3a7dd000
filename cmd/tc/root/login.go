package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <nickname>",
		Short: "Log in (or create) a nickname",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("nickname is required")
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

			if err := svc.Login(args[0]); err != nil {
				return err
			}

			user := svc.Progress().CurrentUser()
			stats := svc.CompletionStats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconUser+" Logged in as"), ui.Key.Render(user))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", fmt.Sprintf("%d/%d tasks", stats.Completed, stats.Total)))
			return nil
		},
	}

	return cmd
}
