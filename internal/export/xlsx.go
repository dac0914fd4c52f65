package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	"demoodle/internal/report"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the grading table.
const SheetName = "Grading"

const (
	degradedFill  = "#FFE0B2"
	referenceFill = "#F2F2F2"
)

// TruncatedSuffix ends a value cut to fit the worksheet cell limit.
const TruncatedSuffix = " [truncated]"

// writeXLSX writes the table to one sheet with the two header rows and the
// identity columns frozen. Degraded learner rows are filled orange.
func writeXLSX(w io.Writer, data report.Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, row := range data.Table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, value := range row {
			values[j] = fitCell(value)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if len(data.Table.Rows) == 0 || data.Table.Width == 0 {
		return f.Write(w)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	reference, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{referenceFill}},
	})
	if err != nil {
		return err
	}
	degraded, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{degradedFill}},
	})
	if err != nil {
		return err
	}
	if err := styleRow(f, 0, data.Table.Width, header); err != nil {
		return err
	}
	if len(data.Table.Rows) > 1 {
		if err := styleRow(f, 1, data.Table.Width, reference); err != nil {
			return err
		}
	}
	for _, entry := range data.Table.Degraded {
		if entry.Row < 2 {
			continue
		}
		if err := styleRow(f, entry.Row, data.Table.Width, degraded); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      2,
		TopLeftCell: "C3",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "B", 18); err != nil {
		return err
	}
	return f.Write(w)
}

// fitCell cuts values longer than excelize.TotalCellChars and marks them
// with TruncatedSuffix.
func fitCell(value string) string {
	if utf8.RuneCountInString(value) <= excelize.TotalCellChars {
		return value
	}
	keep := excelize.TotalCellChars - utf8.RuneCountInString(TruncatedSuffix)
	return string([]rune(value)[:keep]) + TruncatedSuffix
}

func styleRow(f *excelize.File, row, width, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, row+1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, first, last, style)
}
