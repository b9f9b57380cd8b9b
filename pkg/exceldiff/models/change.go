package models

// ChangeType identifies the kind of change a record describes.
type ChangeType string

const (
	// ChangeAdded marks a row present only in the new sheet.
	ChangeAdded ChangeType = "added"
	// ChangeDeleted marks a row present only in the old sheet.
	ChangeDeleted ChangeType = "deleted"
	// ChangeModified marks a row pair matched by similarity with differing cells,
	// or a sheet present in both workbooks with row-level changes.
	ChangeModified ChangeType = "modified"
	// ChangeSheetAdded marks a sheet present only in the new workbook.
	ChangeSheetAdded ChangeType = "sheet_added"
	// ChangeSheetDeleted marks a sheet present only in the old workbook.
	ChangeSheetDeleted ChangeType = "sheet_deleted"
)

// CellChange is one differing cell within a modified row pair.
type CellChange struct {
	// Column is the 0-based column index, relative to the wider of the two rows.
	Column int `json:"column"`
	// OldValue is the cell value in the old row (absent when the old row is shorter).
	OldValue Value `json:"old_value"`
	// NewValue is the cell value in the new row (absent when the new row is shorter).
	NewValue Value `json:"new_value"`
}

// RowChange is one row-level change within a sheet.
type RowChange struct {
	// Type is added, deleted or modified.
	Type ChangeType `json:"type"`
	// Sheet is the owning sheet name.
	Sheet string `json:"sheet"`
	// OldNumber is the 1-based row position in the old sheet, 0 for added rows.
	OldNumber int `json:"old_number,omitempty"`
	// NewNumber is the 1-based row position in the new sheet, 0 for deleted rows.
	NewNumber int `json:"new_number,omitempty"`
	// OldRow is the old row content, nil for added rows.
	OldRow *Row `json:"old_row,omitempty"`
	// NewRow is the new row content, nil for deleted rows.
	NewRow *Row `json:"new_row,omitempty"`
	// CellChanges lists the differing columns of a modified row pair in
	// ascending column order. Empty for added and deleted rows.
	CellChanges []CellChange `json:"cell_changes,omitempty"`
}

// SheetChange is the result for one sheet.
type SheetChange struct {
	// Type is modified, sheet_added or sheet_deleted.
	Type ChangeType `json:"type"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// RowChanges lists the row-level changes. Empty for added and deleted sheets.
	RowChanges []RowChange `json:"row_changes,omitempty"`
}

// WorkbookDiff is the terminal result of one workbook comparison.
type WorkbookDiff struct {
	// OldFile labels the old workbook.
	OldFile string `json:"old_file"`
	// NewFile labels the new workbook.
	NewFile string `json:"new_file"`
	// SheetChanges holds one record per changed sheet: matched sheets with
	// changes and added sheets in new-workbook order, then deleted sheets in
	// old-workbook order.
	SheetChanges []SheetChange `json:"sheet_changes"`
}

// Empty reports whether the diff contains no changes at all.
func (d *WorkbookDiff) Empty() bool {
	return len(d.SheetChanges) == 0
}

// Summary holds per-kind change counts for a workbook diff.
type Summary struct {
	SheetsAdded    int `json:"sheets_added"`
	SheetsDeleted  int `json:"sheets_deleted"`
	SheetsModified int `json:"sheets_modified"`
	RowsAdded      int `json:"rows_added"`
	RowsDeleted    int `json:"rows_deleted"`
	RowsModified   int `json:"rows_modified"`
}

// Summary counts the changes in the diff.
func (d *WorkbookDiff) Summary() Summary {
	var s Summary
	for _, sc := range d.SheetChanges {
		switch sc.Type {
		case ChangeSheetAdded:
			s.SheetsAdded++
		case ChangeSheetDeleted:
			s.SheetsDeleted++
		default:
			if len(sc.RowChanges) > 0 {
				s.SheetsModified++
			}
		}
		for _, rc := range sc.RowChanges {
			switch rc.Type {
			case ChangeAdded:
				s.RowsAdded++
			case ChangeDeleted:
				s.RowsDeleted++
			case ChangeModified:
				s.RowsModified++
			}
		}
	}
	return s
}
