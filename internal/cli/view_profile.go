package cli

import (
	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// profileView shows the static portfolio page in a scrollable viewport.
type profileView struct {
	state *SharedState
	vp    viewport.Model
	ready bool
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state}
}

func (v *profileView) Init() tea.Cmd {
	v.layout()
	return nil
}

func (v *profileView) layout() {
	width := v.state.Width
	if width <= 0 {
		width = 80
	}
	if !v.ready {
		v.vp = viewport.New(width, v.state.ContentHeight())
		v.ready = true
	}
	v.vp.Width = width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(formatter.FormatProfile(v.state.App.Profile, min(width, 100)))
}

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.WindowSizeMsg, refreshViewMsg:
		v.layout()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *profileView) View() string {
	if !v.ready {
		v.layout()
	}
	return v.vp.View()
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Profile" }
func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}
