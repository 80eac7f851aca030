package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var courseHeaders = []string{"ID", "SEMESTER", "CODE", "TITLE", "GRADE", "CREDITS"}

// CourseTableOptions controls the interactive rendering of the course table.
type CourseTableOptions struct {
	// Cursor is the row index under the cursor, or -1 for none.
	Cursor int
	// Selected reports whether a row carries the selection highlight.
	Selected func(id int64) bool
	// TitleWidth truncates titles; zero leaves them whole.
	TitleWidth int
}

// FormatCourseTable renders courses as a table for non-interactive output.
func FormatCourseTable(courses []domain.CourseRecord) string {
	return FormatCourseTableWith(courses, CourseTableOptions{Cursor: -1})
}

// FormatCourseTableWith renders courses with a cursor marker and selection
// highlight.
func FormatCourseTableWith(courses []domain.CourseRecord, opts CourseTableOptions) string {
	if len(courses) == 0 {
		return Dim("No courses added yet. Use 'course add' to record one.") + "\n"
	}

	headers := courseHeaders
	if opts.Cursor >= 0 {
		headers = append([]string{" "}, courseHeaders...)
	}

	rows := make([][]string, 0, len(courses))
	for i, c := range courses {
		title := c.Title
		if opts.TitleWidth > 0 {
			title = Truncate(title, opts.TitleWidth)
		}
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.SemesterLabel(),
			c.Code,
			title,
			formatGrade(c),
			domain.FormatCredits(c.Credits),
		}
		if opts.Cursor >= 0 {
			marker := " "
			if i == opts.Cursor {
				marker = "▸"
			}
			row = append([]string{marker}, row...)
		}
		rows = append(rows, row)
	}

	selected := opts.Selected
	return RenderTableHighlight(headers, rows, func(i int) *lipgloss.Style {
		if selected != nil && selected(courses[i].ID) {
			return &StyleSelected
		}
		return nil
	})
}

func formatGrade(c domain.CourseRecord) string {
	if c.Validate() != nil {
		return StyleRed.Render(string(c.Grade) + "!")
	}
	return GradeStyle(c.Grade).Render(string(c.Grade))
}

// FormatCourseDetail renders one course with its grade points.
func FormatCourseDetail(c domain.CourseRecord) string {
	var b strings.Builder
	b.WriteString(Header(c.Code+" "+c.Title) + "\n")
	fmt.Fprintf(&b, "  %s %d\n", Dim("ID:      "), c.ID)
	fmt.Fprintf(&b, "  %s %s\n", Dim("Semester:"), c.SemesterLabel())
	fmt.Fprintf(&b, "  %s %s\n", Dim("Grade:   "), formatGrade(c))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Credits: "), domain.FormatCredits(c.Credits))
	if err := c.Validate(); err != nil {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Points:  "), StyleRed.Render("excluded from GPA"))
	} else {
		p, _ := c.Grade.Points()
		fmt.Fprintf(&b, "  %s %.1f\n", Dim("Points:  "), p)
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Added:   "), HumanDate(c.CreatedAt))
	return b.String()
}

// FormatGPASummary is the one-line summary shown above the course table.
func FormatGPASummary(stats domain.GpaStats, courseCount int) string {
	return fmt.Sprintf("%s %s  %s %d",
		Bold("Current GPA:"),
		RenderGPABar(stats.Overall, 20),
		Dim("Total Courses:"),
		courseCount,
	)
}

// FormatStats renders overall and per-semester GPA.
func FormatStats(stats domain.GpaStats) string {
	var b strings.Builder
	b.WriteString(Header("GPA Summary") + "\n")
	fmt.Fprintf(&b, "  %s %s\n\n", Bold("Overall:"), RenderGPABar(stats.Overall, 20))

	if len(stats.BySemester) == 0 {
		b.WriteString(Dim("  No courses recorded.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(stats.BySemester))
	for _, s := range stats.BySemester {
		rows = append(rows, []string{
			s.Semester,
			fmt.Sprintf("%.2f", s.GPA),
			strconv.Itoa(s.CourseCount),
			domain.FormatCredits(s.TotalCredits),
		})
	}
	b.WriteString(RenderTable([]string{"SEMESTER", "GPA", "COURSES", "CREDITS"}, rows))

	if n := len(stats.Invalid); n > 0 {
		ids := make([]string, n)
		for i, id := range stats.Invalid {
			ids[i] = strconv.FormatInt(id, 10)
		}
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf(
			"  %d course(s) excluded for invalid grade or credits: %s", n, strings.Join(ids, ", "))) + "\n")
	}
	return b.String()
}

// FormatSemesterFilter renders the filter bar, marking the active entry.
func FormatSemesterFilter(semesters []string, active string) string {
	parts := make([]string, 0, len(semesters))
	for _, s := range semesters {
		if s == active {
			parts = append(parts, StyleGreen.Render("["+s+"]"))
		} else {
			parts = append(parts, Dim(s))
		}
	}
	return Dim("Semester: ") + strings.Join(parts, " ")
}
