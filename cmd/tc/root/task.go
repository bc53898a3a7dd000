package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/engine"
	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the task catalog",
	}

	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskUpdateCmd(),
		newTaskRmCmd(),
		newTaskResetCmd(),
	)

	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var description string
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			desc := description
			if desc == "" {
				desc = args[0]
			}
			t, err := svc.Catalog().Add(args[0], desc, category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render("Added"), t.Title, ui.Muted.Render("(#"+t.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description (defaults to the title)")
	cmd.Flags().StringVarP(&category, "category", "c", "Synttärijuhlat", "Category")

	return cmd
}

func newTaskUpdateCmd() *cobra.Command {
	var title string
	var description string
	var category string

	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Update a task's fields",
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

			patch := engine.TaskPatch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}

			t, err := svc.Catalog().Update(args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render("Updated"), t.Title, ui.Muted.Render("(#"+t.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")

	return cmd
}

func newTaskRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <task_id>",
		Short: "Remove a task from the catalog",
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

			svc.Catalog().Delete(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%s\n", ui.Warn.Render("Removed"), args[0])
			return nil
		},
	}

	return cmd
}

func newTaskResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default task catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.Catalog().ResetAll()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks restored.\n", ui.Good.Render("Catalog reset:"), svc.Catalog().Len())
			return nil
		},
	}

	return cmd
}
