package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Credit bounds accepted by the course form.
const (
	minFormCredits = 1
	maxFormCredits = 6
)

// folioHuhTheme returns a huh theme built from the active formatter palette.
func folioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects blank input for the named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateFormCredits accepts a number of credits between 1 and 6.
func validateFormCredits(s string) error {
	v, err := domain.ParseCredits(s)
	if err != nil {
		return errors.New("credits must be a number")
	}
	if v < minFormCredits || v > maxFormCredits {
		return fmt.Errorf("credits must be between %d and %d", minFormCredits, maxFormCredits)
	}
	return nil
}

func gradeOptions() []huh.Option[string] {
	grades := domain.Grades()
	opts := make([]huh.Option[string], 0, len(grades))
	for _, g := range grades {
		pts, _ := g.Points()
		opts = append(opts, huh.NewOption(fmt.Sprintf("%-2s  (%.1f)", g, pts), string(g)))
	}
	return opts
}

// courseForm edits in. The grade is a closed select so only table grades
// can be chosen.
func courseForm(in *domain.CourseInput) *huh.Form {
	if in.Grade == "" {
		in.Grade = string(domain.GradeA)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Semester").
				Placeholder("Year 1 Semester 1").
				Value(&in.Semester).
				Validate(validateRequired("semester")),
			huh.NewInput().
				Title("Course Code").
				Placeholder("CSC1100").
				Value(&in.Code).
				Validate(validateRequired("course code")),
			huh.NewInput().
				Title("Course Title").
				Value(&in.Title).
				Validate(validateRequired("course title")),
			huh.NewSelect[string]().
				Title("Grade").
				Options(gradeOptions()...).
				Value(&in.Grade),
			huh.NewInput().
				Title("Credits").
				Placeholder("3").
				Value(&in.Credits).
				Validate(validateFormCredits),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// loginForm prompts for the sign-in pair.
func loginForm(username, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username).
				Validate(validateRequired("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// signupForm prompts for a new account. Matching passwords and the other
// account rules are checked by the account service on submit.
func signupForm(in *domain.SignUpInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&in.Username).
				Validate(validateRequired("username")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&in.Email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				Description(fmt.Sprintf("At least %d characters", domain.MinPasswordLen)).
				EchoMode(huh.EchoModePassword).
				Value(&in.Password),
			huh.NewInput().
				Title("Confirm Password").
				EchoMode(huh.EchoModePassword).
				Value(&in.ConfirmPassword),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// credentials holds login form values on the heap so the done callback
// sees what the form wrote.
type credentials struct {
	username string
	password string
}

// startLogin pushes the sign-in form.
func startLogin(state *SharedState) tea.Cmd {
	c := &credentials{}
	return startWizardCmd(state, "Sign In", loginForm(&c.username, &c.password), func() tea.Cmd {
		return tea.Batch(loadingCmd("Signing in..."), submitLogin(state.App, c.username, c.password))
	})
}

// startSignup pushes the sign-up form.
func startSignup(state *SharedState) tea.Cmd {
	in := &domain.SignUpInput{}
	return startWizardCmd(state, "Sign Up", signupForm(in), func() tea.Cmd {
		return tea.Batch(loadingCmd("Creating account..."), submitSignup(state.App, *in))
	})
}

// submitLogin signs in and reports the new session, or the failure as output.
func submitLogin(app *App, username, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := app.Accounts.SignIn(context.Background(), username, password)
		if err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return sessionMsg{session: &sess}
	}
}

// submitSignup creates the account and reports the new session.
func submitSignup(app *App, in domain.SignUpInput) tea.Cmd {
	return func() tea.Msg {
		sess, err := app.Accounts.SignUp(context.Background(), in)
		if err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return sessionMsg{session: &sess}
	}
}

// submitLogout signs out and returns to the login view.
func submitLogout(app *App) tea.Cmd {
	return func() tea.Msg {
		if err := app.Accounts.SignOut(context.Background()); err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return sessionMsg{}
	}
}
