package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/session"
)

// SettingsCmd creates the settings command. Without flags it prints the current settings.
func SettingsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			flags := cmd.Flags()

			if toggle, _ := flags.GetBool("toggle-theme"); toggle {
				settings, err := app.Session.ToggleTheme()
				if err != nil {
					return err
				}
				printSettings(out, settings)
				return nil
			}

			var patch session.SettingsPatch
			var changed []string
			if flags.Changed("theme") {
				changed = append(changed, "theme")
				v, _ := flags.GetString("theme")
				theme := session.Theme(v)
				patch.Theme = &theme
			}
			if flags.Changed("language") {
				changed = append(changed, "language")
				v, _ := flags.GetString("language")
				patch.Language = &v
			}
			if flags.Changed("timezone") {
				changed = append(changed, "timezone")
				v, _ := flags.GetString("timezone")
				patch.Timezone = &v
			}
			if flags.Changed("notifications") {
				changed = append(changed, "notifications")
				v, _ := flags.GetBool("notifications")
				patch.Notifications = &v
			}
			if flags.Changed("auto-refresh") {
				changed = append(changed, "auto-refresh")
				v, _ := flags.GetBool("auto-refresh")
				patch.AutoRefresh = &v
			}
			if flags.Changed("compact") {
				changed = append(changed, "compact")
				v, _ := flags.GetBool("compact")
				patch.CompactView = &v
			}

			if len(changed) == 0 {
				printSettings(out, app.Session.Settings())
				return nil
			}

			app.Logger.Debug("settings command", zap.Strings("changed", changed))

			settings, err := app.Session.UpdateSettings(patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "✓ Settings saved")
			printSettings(out, settings)
			return nil
		},
	}

	cmd.Flags().String("theme", "", "Theme: light or dark")
	cmd.Flags().String("language", "", "Language tag, e.g. en or de-DE")
	cmd.Flags().String("timezone", "", "IANA timezone, e.g. Europe/London")
	cmd.Flags().Bool("notifications", true, "Enable notifications")
	cmd.Flags().Bool("auto-refresh", true, "Enable auto refresh")
	cmd.Flags().Bool("compact", false, "Use the compact view")
	cmd.Flags().Bool("toggle-theme", false, "Switch between light and dark")

	return cmd
}

func printSettings(out io.Writer, s session.Settings) {
	fmt.Fprintf(out, "\n  Theme:         %s\n", s.Theme)
	fmt.Fprintf(out, "  Language:      %s\n", s.Language)
	fmt.Fprintf(out, "  Timezone:      %s\n", s.Timezone)
	fmt.Fprintf(out, "  Notifications: %t\n", s.Notifications)
	fmt.Fprintf(out, "  Auto refresh:  %t\n", s.AutoRefresh)
	fmt.Fprintf(out, "  Compact view:  %t\n\n", s.CompactView)
}
