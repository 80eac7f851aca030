package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one set of theme colors.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
	Select lipgloss.Color
}

// Gruvbox-inspired palettes.
var (
	DarkPalette = Palette{
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#fe8019",
		Select: "#504945",
	}
	LightPalette = Palette{
		Green:  "#427b58",
		Yellow: "#b57614",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#af3a03",
		Select: "#d5c4a1",
	}
)

// Active colors. SetTheme swaps them.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
	ColorSelect lipgloss.Color
)

// Active lipgloss styles, rebuilt by SetTheme.
var (
	StyleGreen    lipgloss.Style
	StyleYellow   lipgloss.Style
	StyleRed      lipgloss.Style
	StyleBlue     lipgloss.Style
	StylePurple   lipgloss.Style
	StyleDim      lipgloss.Style
	StyleFg       lipgloss.Style
	StyleHeader   lipgloss.Style
	StyleBold     lipgloss.Style
	StyleSelected lipgloss.Style
)

var activeTheme domain.Theme

func init() {
	SetTheme(domain.ThemeLight)
}

// SetTheme switches the package palette. It is not safe to call while
// another goroutine renders.
func SetTheme(theme domain.Theme) {
	p := LightPalette
	if theme == domain.ThemeDark {
		p = DarkPalette
	} else {
		theme = domain.ThemeLight
	}
	activeTheme = theme

	ColorGreen, ColorYellow, ColorRed = p.Green, p.Yellow, p.Red
	ColorBlue, ColorPurple, ColorDim = p.Blue, p.Purple, p.Dim
	ColorFg, ColorHeader, ColorSelect = p.Fg, p.Header, p.Select

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleSelected = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorSelect).Bold(true)
}

// ActiveTheme returns the theme last passed to SetTheme.
func ActiveTheme() domain.Theme { return activeTheme }

// GradeStyle colors a grade by band: A and B+ green, B to C yellow, below red.
func GradeStyle(g domain.Grade) lipgloss.Style {
	switch g {
	case domain.GradeA, domain.GradeBPlus:
		return StyleGreen
	case domain.GradeB, domain.GradeCPlus, domain.GradeC:
		return StyleYellow
	case domain.GradeDPlus, domain.GradeD, domain.GradeF:
		return StyleRed
	default:
		return StyleDim
	}
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
