package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				theme, err := app.Preferences.Theme(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Theme: %s\n", theme)
				return nil
			}

			var theme domain.Theme
			if strings.EqualFold(args[0], "toggle") {
				t, err := app.Preferences.ToggleTheme(ctx)
				if err != nil {
					return err
				}
				theme = t
			} else {
				t, err := domain.ParseTheme(args[0])
				if err != nil {
					return err
				}
				if err := app.Preferences.SetTheme(ctx, t); err != nil {
					return err
				}
				theme = t
			}

			formatter.SetTheme(theme)
			fmt.Fprintf(out, "Theme set to %s\n", formatter.StyleHeader.Render(string(theme)))
			return nil
		},
	}
}
