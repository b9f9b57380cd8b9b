package models

import "strings"

// Row is an ordered sequence of cell values at one position in a sheet.
type Row struct {
	// Number is the 1-based row position in the sheet.
	Number int `json:"number"`
	// Cells are the values in column order. Trailing absent cells may be
	// omitted; Cell treats columns beyond the slice as absent.
	Cells []Value `json:"cells"`
}

// NewRow builds a row at the given 1-based position.
func NewRow(number int, cells ...Value) Row {
	return Row{Number: number, Cells: cells}
}

// Cell returns the value at the 0-based column index, absent when the row is
// shorter than the requested column.
func (r Row) Cell(i int) Value {
	if i < 0 || i >= len(r.Cells) {
		return Absent()
	}
	return r.Cells[i]
}

// Width returns the column count of the row.
func (r Row) Width() int {
	return len(r.Cells)
}

// Display returns the pipe-joined display form of the row. It is presentation
// only; comparison goes through the canonical fingerprint.
func (r Row) Display() string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, "|")
}
