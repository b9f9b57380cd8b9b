package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

var csvHeader = []string{
	"type", "sheet", "old_row", "new_row", "column", "cell",
	"old_value", "new_value", "description",
}

// WriteCSV renders the diff as CSV, one record per sheet-level or row-level
// change; a modified row emits one record per changed cell.
func WriteCSV(w io.Writer, d *models.WorkbookDiff) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, sc := range d.SheetChanges {
		if err := writeCSVSheet(cw, sc); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeCSVSheet(cw *csv.Writer, sc models.SheetChange) error {
	switch sc.Type {
	case models.ChangeSheetAdded:
		return cw.Write([]string{"sheet_added", sc.Sheet, "", "", "", "", "", "", "Sheet added"})
	case models.ChangeSheetDeleted:
		return cw.Write([]string{"sheet_deleted", sc.Sheet, "", "", "", "", "", "", "Sheet deleted"})
	}

	for _, rc := range sc.RowChanges {
		if err := writeCSVRow(cw, rc); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(cw *csv.Writer, rc models.RowChange) error {
	oldRow := ""
	if rc.OldNumber > 0 {
		oldRow = strconv.Itoa(rc.OldNumber)
	}
	newRow := ""
	if rc.NewNumber > 0 {
		newRow = strconv.Itoa(rc.NewNumber)
	}

	switch rc.Type {
	case models.ChangeAdded:
		return cw.Write([]string{
			"row_added", rc.Sheet, oldRow, newRow, "", "", "", rc.NewRow.Display(), "Row added",
		})
	case models.ChangeDeleted:
		return cw.Write([]string{
			"row_deleted", rc.Sheet, oldRow, newRow, "", "", rc.OldRow.Display(), "", "Row deleted",
		})
	case models.ChangeModified:
		for _, cc := range rc.CellChanges {
			letter := columnLetter(cc.Column)
			if err := cw.Write([]string{
				"cell_modified", rc.Sheet, oldRow, newRow, letter, letter + newRow,
				cc.OldValue.String(), cc.NewValue.String(), "Cell modified",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
