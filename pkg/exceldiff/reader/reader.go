// Package reader loads xlsx files into the workbook model used for diffing.
// Cell values arrive from excelize as display strings; the reader sniffs them
// into typed values (number, bool, date, text) so comparison is type-aware.
package reader

import (
	"bytes"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/xuri/excelize/v2"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// dateLayouts are the display formats recognized as date values.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	time.RFC3339,
}

// ReadFile reads an xlsx file from disk.
func ReadFile(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWorkbook(f, path)
}

// ReadBytes reads an xlsx file from memory, e.g. a blob retrieved from a git
// revision. The name labels the workbook in diff output.
func ReadBytes(b []byte, name string) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWorkbook(f, name)
}

func readWorkbook(f *excelize.File, name string) (*models.Workbook, error) {
	wb := models.NewWorkbook(name)

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}

		sheet := &models.Sheet{Name: sheetName}
		for rowIdx, cells := range rows {
			row := models.Row{Number: rowIdx + 1, Cells: make([]models.Value, len(cells))}
			for colIdx, cell := range cells {
				row.Cells[colIdx] = parseValue(cell)
			}
			sheet.Rows = append(sheet.Rows, row)
		}

		log.WithField("sheet", sheetName).
			WithField("rows", len(sheet.Rows)).
			Debug("read sheet")
		wb.AddSheet(sheet)
	}

	return wb, nil
}

// parseValue sniffs a display string into a typed cell value. Empty strings
// are absent cells; numbers, TRUE/FALSE and known date layouts are typed, and
// anything else stays text.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Absent()
	}
	if s == "TRUE" || s == "FALSE" {
		return models.Bool(s == "TRUE")
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(s, n)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.Date(s, t)
		}
	}
	return models.Text(s)
}
