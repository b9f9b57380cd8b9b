package exceldiff

import (
	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/differ"
	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// Compare diffs two workbooks. Sheets correspond by exact name equality.
// Sheets present in both workbooks are compared row by row; a sheet present on
// one side only yields a sheet_added or sheet_deleted record. Output follows
// the new workbook's sheet order, with deleted sheets appended after it in old
// order. Matched sheets without changes produce no record.
//
// Per-sheet comparisons run concurrently; results are collected into
// position-indexed slots so the output is identical to a sequential run.
func Compare(oldWB, newWB *models.Workbook, opts Options) (*models.WorkbookDiff, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if oldWB == nil || newWB == nil {
		return nil, ErrMissingWorkbook
	}

	diff := &models.WorkbookDiff{
		OldFile: oldWB.Name,
		NewFile: newWB.Name,
	}

	results := make([]*models.SheetChange, len(newWB.Sheets))
	var g errgroup.Group
	g.SetLimit(opts.parallelism())

	for i, newSheet := range newWB.Sheets {
		oldSheet, ok := oldWB.Sheet(newSheet.Name)
		if !ok {
			results[i] = &models.SheetChange{Type: models.ChangeSheetAdded, Sheet: newSheet.Name}
			continue
		}
		g.Go(func() error {
			rowChanges := differ.DiffSheets(oldSheet, newSheet, opts.Threshold)
			log.WithField("sheet", newSheet.Name).
				WithField("changes", len(rowChanges)).
				Debug("compared sheet")
			if len(rowChanges) > 0 {
				results[i] = &models.SheetChange{
					Type:       models.ChangeModified,
					Sheet:      newSheet.Name,
					RowChanges: rowChanges,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, sc := range results {
		if sc != nil {
			diff.SheetChanges = append(diff.SheetChanges, *sc)
		}
	}

	for _, oldSheet := range oldWB.Sheets {
		if _, ok := newWB.Sheet(oldSheet.Name); !ok {
			diff.SheetChanges = append(diff.SheetChanges, models.SheetChange{
				Type:  models.ChangeSheetDeleted,
				Sheet: oldSheet.Name,
			})
		}
	}

	return diff, nil
}
