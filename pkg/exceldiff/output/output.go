// Package output renders a workbook diff as human-readable text, CSV, or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// Format selects an output rendering.
type Format string

const (
	// FormatText renders a human-readable report with a summary block.
	FormatText Format = "text"
	// FormatCSV renders one record per change, suitable for spreadsheets.
	FormatCSV Format = "csv"
	// FormatJSON renders the whole diff structure.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (must be text, csv, or json)", s)
	}
}

// Write renders the diff in the given format. Pretty only affects JSON.
func Write(w io.Writer, d *models.WorkbookDiff, f Format, pretty bool) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatJSON:
		return WriteJSON(w, d, pretty)
	default:
		return WriteText(w, d)
	}
}

// columnLetter converts a 0-based column index to its Excel column name.
func columnLetter(index int) string {
	name, _ := excelize.ColumnNumberToName(index + 1)
	return name
}
