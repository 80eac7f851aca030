package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/xuri/excelize/v2"
)

var columnWidths = []float64{20, 12, 36, 8, 10, 10}

// WriteXLSX writes a workbook with a single Transcript sheet: a header row,
// one row per course, then the GPA summary below a blank row.
func WriteXLSX(w io.Writer, courses []domain.CourseRecord, stats domain.GpaStats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for i, width := range columnWidths {
		col := colName(i)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating summary style: %w", err)
	}

	row := 1
	if err := setRow(f, row, courseHeader, headerStyle); err != nil {
		return err
	}
	for _, c := range courses {
		row++
		if err := setCourseRow(f, row, c); err != nil {
			return err
		}
	}

	row += 2
	for i, values := range summaryRows(stats) {
		style := 0
		if i == 0 {
			style = headerStyle
		} else if values[0] == "Overall" {
			style = boldStyle
		}
		if err := setRow(f, row, values, style); err != nil {
			return err
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

// setCourseRow writes credits and points as numbers so the sheet can sum them.
func setCourseRow(f *excelize.File, row int, c domain.CourseRecord) error {
	values := courseRow(c)
	for i, v := range values {
		var cellValue any = v
		if i >= 4 && v != "" {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				cellValue = n
			}
		}
		if err := f.SetCellValue(SheetName, cell(i, row), cellValue); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string, style int) error {
	for i, v := range values {
		if err := f.SetCellValue(SheetName, cell(i, row), v); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}
	if style == 0 || len(values) == 0 {
		return nil
	}
	if err := f.SetCellStyle(SheetName, cell(0, row), cell(len(values)-1, row), style); err != nil {
		return fmt.Errorf("styling row %d: %w", row, err)
	}
	return nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
