package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Janimeister/Taskmaster/internal/engine"
	"github.com/Janimeister/Taskmaster/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var theme string
	var language string
	var sound bool
	var motivation bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			patch := engine.SettingsPatch{}
			if cmd.Flags().Changed("theme") {
				patch.Theme = &theme
			}
			if cmd.Flags().Changed("language") {
				patch.Language = &language
			}
			if cmd.Flags().Changed("sound") {
				patch.SoundEnabled = &sound
			}
			if cmd.Flags().Changed("motivation") {
				patch.ShowMotivation = &motivation
			}

			current, err := svc.Settings().Update(patch)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconInfo, "Settings"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", current.Theme))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Language", current.Language))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Sound", onOff(current.SoundEnabled)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Motivation", onOff(current.ShowMotivation)))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme (light|dark)")
	cmd.Flags().StringVar(&language, "language", "", "Language (en|fi)")
	cmd.Flags().BoolVar(&sound, "sound", true, "Completion sounds")
	cmd.Flags().BoolVar(&motivation, "motivation", false, "Show motivational quotes on the board")

	return cmd
}

func onOff(b bool) string {
	if b {
		return ui.Good.Render("on")
	}
	return ui.Muted.Render("off")
}
