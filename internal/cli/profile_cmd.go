package cli

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the portfolio profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(app.Profile, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}
