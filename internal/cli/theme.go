package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
	"github.com/trebuchet-org/arbiter/internal/domain/config"
)

// NewThemeCmd creates the theme command
func NewThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or change the colour theme",
		Long: `Show the active colour theme, or set it. The choice is saved and used by
every later command; without a saved choice the terminal's scheme decides.`,
		Example: `  arbiter theme
  arbiter theme dark
  arbiter theme toggle`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) > 0 {
				switch config.Theme(args[0]) {
				case config.ThemeDark:
					err = app.Theme.Set(ctx, true)
				case config.ThemeLight:
					err = app.Theme.Set(ctx, false)
				case "toggle":
					_, err = app.Theme.Toggle(ctx)
				default:
					return fmt.Errorf("unknown theme %q (use dark, light or toggle)", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Theme set to %s", app.Theme.Theme())))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", palette(app).Accent.Sprint(app.Theme.Theme()))
			return nil
		},
	}
}
