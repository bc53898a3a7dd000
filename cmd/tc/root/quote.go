package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/engine"
	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			q, err := engine.FetchQuote(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", ui.IconQuote, q.Text)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("— "+q.Author))
			return nil
		},
	}

	return cmd
}
