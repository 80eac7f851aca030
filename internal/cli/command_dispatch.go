package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand dispatches a command bar line and returns a tea.Cmd.
// A few words are handled by the shell itself; everything else runs
// through the cobra tree.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitShellArgs(input)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		if len(args) == 0 {
			return outputCmd(formatter.FormatShellHelp())
		}
	case "clear":
		return nil
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	case "shell":
		return outputCmd(formatter.StyleYellow.Render("Already in the shell."))
	case "profile":
		if len(args) == 0 {
			return pushView(newProfileView(c.state))
		}
	case "login", "signin":
		if len(args) == 0 {
			return startLogin(c.state)
		}
	case "signup", "register":
		if len(args) == 0 {
			return startSignup(c.state)
		}
	}

	return c.runCobra(parts)
}

// runCobra executes args through the cobra tree off the UI goroutine and
// reports the output together with the resulting session.
func (c *commandBar) runCobra(args []string) tea.Cmd {
	app := c.state.App
	return func() tea.Msg {
		ctx := context.Background()
		out := captureCobraOutput(ctx, app, args)
		msg := commandResultMsg{output: out}
		if sess, err := app.Accounts.Current(ctx); err == nil {
			msg.session = &sess
		}
		return msg
	}
}

// suggestAlternatives lists commands close to an unknown name.
func suggestAlternatives(app *App, input string) string {
	matches := NewRootCmd(app).SuggestionsFor(input)
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Dim("Did you mean:"))
	for _, m := range matches {
		b.WriteString(fmt.Sprintf("\n  %s", formatter.StyleGreen.Render(m)))
	}
	return b.String()
}
