package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out the current user (progress is kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user := svc.Progress().CurrentUser()
			if user == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nobody is logged in."))
				return nil
			}
			svc.Logout()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("Logged out"), ui.Muted.Render(user))
			return nil
		},
	}

	return cmd
}
