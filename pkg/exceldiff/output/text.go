package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

var (
	addedMarker    = color.New(color.FgGreen)
	deletedMarker  = color.New(color.FgRed)
	modifiedMarker = color.New(color.FgYellow)
)

const rule = 70

// WriteText renders the diff as a human-readable report: a header, one section
// per changed sheet, and a summary block.
func WriteText(w io.Writer, d *models.WorkbookDiff) error {
	line := strings.Repeat("=", rule)
	if _, err := fmt.Fprintf(w, "%s\nExcel Diff: %s\nComparing: %s <-> %s\n%s\n\n",
		line, d.NewFile, d.OldFile, d.NewFile, line); err != nil {
		return err
	}

	if d.Empty() {
		_, err := fmt.Fprintln(w, "No changes detected.")
		return err
	}

	for _, sc := range d.SheetChanges {
		if err := writeTextSheet(w, sc); err != nil {
			return err
		}
	}

	return writeTextSummary(w, d.Summary(), line)
}

func writeTextSheet(w io.Writer, sc models.SheetChange) error {
	switch sc.Type {
	case models.ChangeSheetAdded:
		_, err := fmt.Fprintf(w, "[Sheet ADDED] %s\n\n", sc.Sheet)
		return err
	case models.ChangeSheetDeleted:
		_, err := fmt.Fprintf(w, "[Sheet DELETED] %s\n\n", sc.Sheet)
		return err
	}

	if _, err := fmt.Fprintf(w, "[Sheet: %s]\n", sc.Sheet); err != nil {
		return err
	}
	for _, rc := range sc.RowChanges {
		if err := writeTextRow(w, rc); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeTextRow(w io.Writer, rc models.RowChange) error {
	switch rc.Type {
	case models.ChangeAdded:
		if _, err := fmt.Fprintf(w, "  Row %d ADDED\n", rc.NewNumber); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "    %s\n", addedMarker.Sprintf("+ %s", rc.NewRow.Display()))
		return err

	case models.ChangeDeleted:
		if _, err := fmt.Fprintf(w, "  Row %d DELETED\n", rc.OldNumber); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "    %s\n", deletedMarker.Sprintf("- %s", rc.OldRow.Display()))
		return err

	case models.ChangeModified:
		header := fmt.Sprintf("  Row %d MODIFIED", rc.NewNumber)
		if rc.OldNumber != rc.NewNumber {
			header += fmt.Sprintf(" (was row %d)", rc.OldNumber)
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		for _, cc := range rc.CellChanges {
			delta := modifiedMarker.Sprintf("%q -> %q", cc.OldValue.String(), cc.NewValue.String())
			if _, err := fmt.Fprintf(w, "    Column %s: %s\n", columnLetter(cc.Column), delta); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTextSummary(w io.Writer, s models.Summary, line string) error {
	if _, err := fmt.Fprintf(w, "\n%s\nSummary\n%s\n", line, line); err != nil {
		return err
	}
	if s.SheetsAdded > 0 {
		if _, err := fmt.Fprintf(w, "Sheets added: %d\n", s.SheetsAdded); err != nil {
			return err
		}
	}
	if s.SheetsDeleted > 0 {
		if _, err := fmt.Fprintf(w, "Sheets deleted: %d\n", s.SheetsDeleted); err != nil {
			return err
		}
	}
	if s.SheetsModified > 0 {
		if _, err := fmt.Fprintf(w, "Sheets modified: %d\n", s.SheetsModified); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Rows added: %d\nRows deleted: %d\nRows modified: %d\n",
		s.RowsAdded, s.RowsDeleted, s.RowsModified)
	return err
}
