package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"signin"},
		Short:   "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (username == "" || password == "") && app.interactive() {
				if err := loginForm(&username, &password).Run(); err != nil {
					return err
				}
			}
			if strings.TrimSpace(username) == "" || password == "" {
				return errors.New("--username and --password are required")
			}

			sess, err := app.Accounts.SignIn(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", formatter.StyleGreen.Render(sess.Username))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var in domain.SignUpInput

	cmd := &cobra.Command{
		Use:     "signup",
		Aliases: []string{"register"},
		Short:   "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (in.Username == "" || in.Email == "" || in.Password == "") && app.interactive() {
				if err := signupForm(&in).Run(); err != nil {
					return err
				}
			}
			if in.ConfirmPassword == "" {
				in.ConfirmPassword = in.Password
			}

			sess, err := app.Accounts.SignUp(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created. Signed in as %s\n", formatter.StyleGreen.Render(sess.Username))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&in.ConfirmPassword, "confirm", "", "Repeat the password (default: same as --password)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Aliases: []string{"signout"},
		Short:   "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Accounts.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Accounts.Current(cmd.Context())
			if errors.Is(err, service.ErrNotSignedIn) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Not signed in."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(sess))
			return nil
		},
	}
}
