package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses     service.CourseService
	Accounts    service.AccountService
	Preferences service.PreferenceService
	Profile     config.Profile

	// IsInteractive reports whether stdin is a terminal. Nil means never,
	// which keeps prompts and the TUI out of tests and pipes.
	IsInteractive func() bool

	// HistoryPath is the TUI command bar history file. Empty disables history.
	HistoryPath string

	// Logger receives warnings the TUI cannot show. Nil discards them.
	Logger *slog.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Course and GPA tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyTheme(cmd.Context(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newCourseCmd(app),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newThemeCmd(app),
		newProfileCmd(app),
		newShellCmd(app),
	)

	return root
}

// applyTheme loads the stored theme into the formatter palette.
func applyTheme(ctx context.Context, app *App) error {
	theme, err := app.Preferences.Theme(ctx)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	formatter.SetTheme(theme)
	return nil
}

// requireSession is the login gate for commands that touch course data.
func requireSession(app *App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := applyTheme(cmd.Context(), app); err != nil {
			return err
		}
		if _, err := app.Accounts.Current(cmd.Context()); err != nil {
			if errors.Is(err, service.ErrNotSignedIn) {
				return fmt.Errorf("%w: run 'folio login' first", err)
			}
			return err
		}
		return nil
	}
}
