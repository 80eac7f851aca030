package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// FormatProfile renders the static portfolio page. width wraps the about
// text; zero leaves it unwrapped.
func FormatProfile(p config.Profile, width int) string {
	var b strings.Builder
	b.WriteString(StylePurple.Bold(true).Render(p.Name) + "\n")
	if p.Subtitle != "" {
		b.WriteString(Dim(p.Subtitle) + "\n")
	}

	if p.About != "" {
		b.WriteString("\n" + Header("About Me") + "\n")
		about := p.About
		if width > 4 {
			about = lipgloss.NewStyle().Width(width - 2).Render(about)
		}
		b.WriteString(indent(about, "  ") + "\n")
	}

	if len(p.Details) > 0 {
		b.WriteString("\n" + Header("Personal Details") + "\n")
		labelWidth := 0
		for _, d := range p.Details {
			labelWidth = max(labelWidth, len(d.Label))
		}
		for _, d := range p.Details {
			fmt.Fprintf(&b, "  %s  %s\n", Dim(fmt.Sprintf("%-*s", labelWidth, d.Label)), d.Value)
		}
	}

	if len(p.Links) > 0 {
		b.WriteString("\n" + Header("Useful Links") + "\n")
		for _, l := range p.Links {
			fmt.Fprintf(&b, "  %s  %s\n", StyleGreen.Render(l.Label), StyleBlue.Render(l.URL))
		}
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
