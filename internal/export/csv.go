package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/folio/internal/domain"
)

// WriteCSV writes the course rows, a blank line, then the GPA summary.
func WriteCSV(w io.Writer, courses []domain.CourseRecord, stats domain.GpaStats) error {
	cw := csv.NewWriter(w)

	records := make([][]string, 0, len(courses)+len(stats.BySemester)+4)
	records = append(records, courseHeader)
	for _, c := range courses {
		records = append(records, courseRow(c))
	}
	records = append(records, []string{})
	records = append(records, summaryRows(stats)...)

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
