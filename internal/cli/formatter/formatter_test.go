package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestSetTheme_SwapsPalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(domain.ThemeLight) })

	SetTheme(domain.ThemeDark)
	assert.Equal(t, domain.ThemeDark, ActiveTheme())
	assert.Equal(t, DarkPalette.Header, ColorHeader)

	SetTheme(domain.ThemeLight)
	assert.Equal(t, domain.ThemeLight, ActiveTheme())
	assert.Equal(t, LightPalette.Header, ColorHeader)

	SetTheme(domain.Theme("neon"))
	assert.Equal(t, domain.ThemeLight, ActiveTheme())
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONG"}, [][]string{{"xyz", "1"}, {"q", "22"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A    LONG", lines[0])
	assert.Equal(t, "xyz  1", lines[2])
	assert.Equal(t, "q    22", lines[3])
}

func TestFormatCourseTable(t *testing.T) {
	courses := []domain.CourseRecord{
		testutil.NewTestCourse(11, "Year 1 Semester 1", domain.GradeA, 3),
		testutil.NewTestCourse(12, "", domain.GradeB, 0),
	}
	out := stripANSI(FormatCourseTable(courses))

	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "Course 11")
	assert.Contains(t, out, domain.UnassignedSemester)
	assert.Contains(t, out, "B!", "invalid records are flagged")
}

func TestFormatCourseTable_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatCourseTable(nil)), "No courses added yet")
}

func TestFormatCourseTableWith_CursorMarker(t *testing.T) {
	courses := []domain.CourseRecord{
		testutil.NewTestCourse(1, "S", domain.GradeA, 3),
		testutil.NewTestCourse(2, "S", domain.GradeA, 3),
	}
	out := stripANSI(FormatCourseTableWith(courses, CourseTableOptions{Cursor: 1}))
	lines := strings.Split(out, "\n")

	assert.True(t, strings.HasPrefix(lines[2], " "))
	assert.True(t, strings.HasPrefix(lines[3], "▸"))
}

func TestFormatStats(t *testing.T) {
	courses := []domain.CourseRecord{
		testutil.NewTestCourse(1, "Sem1", domain.GradeA, 3),
		testutil.NewTestCourse(2, "Sem1", domain.GradeB, 2),
		testutil.NewTestCourse(3, "Sem2", domain.GradeA, 0),
	}
	out := stripANSI(FormatStats(domain.ComputeStats(courses)))

	assert.Contains(t, out, "4.60 / 5.00")
	assert.Contains(t, out, "Sem2")
	assert.Contains(t, out, "1 course(s) excluded")
	assert.Contains(t, out, ": 3")
}

func TestFormatStats_Empty(t *testing.T) {
	out := stripANSI(FormatStats(domain.ComputeStats(nil)))
	assert.Contains(t, out, "0.00 / 5.00")
	assert.Contains(t, out, "No courses recorded.")
}

func TestRenderGPABar_Clamps(t *testing.T) {
	assert.Contains(t, stripANSI(RenderGPABar(5, 10)), strings.Repeat(filledBlock, 10))
	assert.Contains(t, stripANSI(RenderGPABar(0, 10)), strings.Repeat(emptyBlock, 10))
	assert.Contains(t, stripANSI(RenderGPABar(9, 4)), "9.00 / 5.00")
}

func TestFormatProfile(t *testing.T) {
	p := config.Profile{
		Name:     "Ada Lovelace",
		Subtitle: "Analyst",
		About:    "Wrote the first program.",
		Details:  []config.Detail{{Label: "Year", Value: "1843"}},
		Links:    []config.Link{{Label: "Notes", URL: "https://example.com/notes"}},
	}
	out := stripANSI(FormatProfile(p, 0))

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ABOUT ME")
	assert.Contains(t, out, "Year  1843")
	assert.Contains(t, out, "https://example.com/notes")
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDateFrom(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.Add(-24*time.Hour), now))
	assert.Equal(t, "Jan 5, 2026", HumanDateFrom(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "—", HumanDateFrom(time.Time{}, now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Intro…", Truncate("Introduction", 6))
}
