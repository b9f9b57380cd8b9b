package differ

import "github.com/exceldiff/exceldiff/pkg/exceldiff/models"

// DetectCellChanges returns the columns whose values differ between two rows,
// in ascending column order. The shorter row is padded with absent cells to
// the wider row's width. Identical rows yield an empty set.
func DetectCellChanges(oldRow, newRow models.Row) []models.CellChange {
	width := oldRow.Width()
	if newRow.Width() > width {
		width = newRow.Width()
	}

	var changes []models.CellChange
	for i := 0; i < width; i++ {
		oldVal := oldRow.Cell(i)
		newVal := newRow.Cell(i)
		if !oldVal.Equal(newVal) {
			changes = append(changes, models.CellChange{
				Column:   i,
				OldValue: oldVal,
				NewValue: newVal,
			})
		}
	}
	return changes
}
