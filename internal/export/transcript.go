// Package export renders a course transcript for use outside the app.
package export

import (
	"strconv"

	"github.com/alexanderramin/folio/internal/domain"
)

// SheetName is the worksheet holding the transcript.
const SheetName = "Transcript"

var courseHeader = []string{"Semester", "Code", "Title", "Grade", "Credits", "Points"}

func courseRow(c domain.CourseRecord) []string {
	points := ""
	if c.Validate() == nil {
		p, _ := c.Grade.Points()
		points = formatGPA(p)
	}
	return []string{
		c.SemesterLabel(),
		c.Code,
		c.Title,
		string(c.Grade),
		domain.FormatCredits(c.Credits),
		points,
	}
}

// summaryRows lists per-semester GPA then the overall GPA.
func summaryRows(stats domain.GpaStats) [][]string {
	rows := [][]string{{"Semester", "Courses", "Credits", "GPA"}}
	for _, s := range stats.BySemester {
		rows = append(rows, []string{
			s.Semester,
			strconv.Itoa(s.CourseCount),
			domain.FormatCredits(s.TotalCredits),
			formatGPA(s.GPA),
		})
	}
	rows = append(rows, []string{"Overall", "", "", formatGPA(stats.Overall)})
	return rows
}

func formatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
