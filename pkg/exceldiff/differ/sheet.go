package differ

import (
	"math"
	"sort"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// DiffSheets compares two sheets of the same name and returns the row-level
// changes. Exact matching runs first, similarity matching over the remainder,
// then cell change detection for every similar pair. Output is ordered by
// new-sheet position; a deleted row is interleaved just before the new
// position of the nearest old-sheet successor that survived, or after
// everything when no successor survived.
func DiffSheets(oldSheet, newSheet *models.Sheet, threshold float64) []models.RowChange {
	oldFPs := make([]string, len(oldSheet.Rows))
	for i, r := range oldSheet.Rows {
		oldFPs[i] = Fingerprint(r)
	}
	newFPs := make([]string, len(newSheet.Rows))
	for j, r := range newSheet.Rows {
		newFPs[j] = Fingerprint(r)
	}

	exact, unmatchedOld, unmatchedNew := MatchExact(oldFPs, newFPs)
	similar, remainingOld, remainingNew := MatchSimilar(oldSheet.Rows, newSheet.Rows, unmatchedOld, unmatchedNew, threshold)

	// New row number each matched old index maps to, for anchoring deletions.
	matchedNewNumber := make(map[int]int, len(exact)+len(similar))
	for _, m := range exact {
		matchedNewNumber[m.Old] = newSheet.Rows[m.New].Number
	}
	for _, m := range similar {
		matchedNewNumber[m.Old] = newSheet.Rows[m.New].Number
	}

	type record struct {
		key    float64
		oldNum int
		change models.RowChange
	}
	var records []record

	for _, m := range similar {
		oldRow := oldSheet.Rows[m.Old]
		newRow := newSheet.Rows[m.New]
		records = append(records, record{
			key:    float64(newRow.Number),
			oldNum: oldRow.Number,
			change: models.RowChange{
				Type:        models.ChangeModified,
				Sheet:       newSheet.Name,
				OldNumber:   oldRow.Number,
				NewNumber:   newRow.Number,
				OldRow:      &oldRow,
				NewRow:      &newRow,
				CellChanges: DetectCellChanges(oldRow, newRow),
			},
		})
	}

	for _, j := range remainingNew {
		newRow := newSheet.Rows[j]
		records = append(records, record{
			key: float64(newRow.Number),
			change: models.RowChange{
				Type:      models.ChangeAdded,
				Sheet:     newSheet.Name,
				NewNumber: newRow.Number,
				NewRow:    &newRow,
			},
		})
	}

	for _, i := range remainingOld {
		oldRow := oldSheet.Rows[i]
		key := math.Inf(1)
		for succ := i + 1; succ < len(oldSheet.Rows); succ++ {
			if n, ok := matchedNewNumber[succ]; ok {
				key = float64(n) - 0.5
				break
			}
		}
		records = append(records, record{
			key:    key,
			oldNum: oldRow.Number,
			change: models.RowChange{
				Type:      models.ChangeDeleted,
				Sheet:     oldSheet.Name,
				OldNumber: oldRow.Number,
				OldRow:    &oldRow,
			},
		})
	}

	sort.Slice(records, func(a, b int) bool {
		if records[a].key != records[b].key {
			return records[a].key < records[b].key
		}
		return records[a].oldNum < records[b].oldNum
	})

	changes := make([]models.RowChange, len(records))
	for i, r := range records {
		changes[i] = r.change
	}
	return changes
}
