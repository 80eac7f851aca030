package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type loginKeyMap struct {
	SignIn  key.Binding
	SignUp  key.Binding
	Profile key.Binding
}

var loginKeys = loginKeyMap{
	SignIn:  key.NewBinding(key.WithKeys("l", "enter"), key.WithHelp("l", "sign in")),
	SignUp:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sign up")),
	Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
}

// loginView is the home view while signed out.
type loginView struct {
	state *SharedState
}

func newLoginView(state *SharedState) *loginView {
	return &loginView{state: state}
}

func (v *loginView) Init() tea.Cmd { return nil }

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, loginKeys.SignIn):
		return v, startLogin(v.state)
	case key.Matches(keyMsg, loginKeys.SignUp):
		return v, startSignup(v.state)
	case key.Matches(keyMsg, loginKeys.Profile):
		return v, pushView(newProfileView(v.state))
	}
	return v, nil
}

func (v *loginView) View() string {
	p := v.state.App.Profile
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.StylePurple.Bold(true).Render(p.Name) + "\n")
	if p.Subtitle != "" {
		b.WriteString(formatter.Dim(p.Subtitle) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Sign in to manage your courses and track your GPA.\n\n")
	fmt.Fprintf(&b, "  %s  sign in\n", formatter.StyleGreen.Render("l"))
	fmt.Fprintf(&b, "  %s  create an account\n", formatter.StyleGreen.Render("s"))
	fmt.Fprintf(&b, "  %s  view the profile\n", formatter.StyleGreen.Render("p"))
	return formatter.RenderBox("Welcome", b.String())
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Sign In" }
func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{loginKeys.SignIn, loginKeys.SignUp, loginKeys.Profile}
}
