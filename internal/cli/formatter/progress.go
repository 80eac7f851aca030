package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGPABar renders a GPA against the top of the grading scale, e.g.
// [████████░░] 4.10 / 5.00.
func RenderGPABar(gpa float64, width int) string {
	top, _ := domain.GradeA.Points()
	bar, style := progressBar(gpa/top, width)
	return fmt.Sprintf("[%s] %.2f / %.2f", style.Render(bar), gpa, top)
}

// progressBar fills width cells in proportion to pct, colored green above
// 66%, yellow from 33%, red below.
func progressBar(pct float64, width int) (string, lipgloss.Style) {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return bar, style
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
