package cli

import (
	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// cmdLoadingMsg shows a placeholder while a slow command runs.
type cmdLoadingMsg struct {
	message string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// sessionMsg reports the session after sign-in, sign-up or sign-out. A nil
// session means signed out. The appModel resets the view stack to the home
// view for the new state.
type sessionMsg struct {
	session *domain.Session
}

// commandResultMsg carries the output of a command bar line run through the
// cobra tree, with the session as it stands afterwards.
type commandResultMsg struct {
	output  string
	session *domain.Session
}

// deselectMsg tells views that focus left the list surface, so any row
// selection returns to idle.
type deselectMsg struct{}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// refreshViews returns a tea.Cmd that reloads every view on the stack.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// loadingCmd shows message until the next output replaces it.
func loadingCmd(message string) tea.Cmd {
	return func() tea.Msg { return cmdLoadingMsg{message: message} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// wizardCompleteOutput closes the wizard and shows s.
func wizardCompleteOutput(s string) wizardCompleteMsg {
	return wizardCompleteMsg{nextCmd: outputCmd(s)}
}

func shellError(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}
