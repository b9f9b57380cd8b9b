package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

func testDiff() *models.WorkbookDiff {
	oldRow := models.NewRow(2, models.Text("B"), models.Text("2"))
	newRow := models.NewRow(2, models.Text("B"), models.Text("9"))
	addedRow := models.NewRow(3, models.Text("D"), models.Text("4"))
	deletedRow := models.NewRow(4, models.Text("E"), models.Text("5"))

	return &models.WorkbookDiff{
		OldFile: "old.xlsx",
		NewFile: "new.xlsx",
		SheetChanges: []models.SheetChange{
			{
				Type:  models.ChangeModified,
				Sheet: "Data",
				RowChanges: []models.RowChange{
					{
						Type: models.ChangeModified, Sheet: "Data",
						OldNumber: 2, NewNumber: 2,
						OldRow: &oldRow, NewRow: &newRow,
						CellChanges: []models.CellChange{
							{Column: 1, OldValue: models.Text("2"), NewValue: models.Text("9")},
						},
					},
					{
						Type: models.ChangeAdded, Sheet: "Data",
						NewNumber: 3, NewRow: &addedRow,
					},
					{
						Type: models.ChangeDeleted, Sheet: "Data",
						OldNumber: 4, OldRow: &deletedRow,
					},
				},
			},
			{Type: models.ChangeSheetAdded, Sheet: "Fresh"},
			{Type: models.ChangeSheetDeleted, Sheet: "Gone"},
		},
	}
}

func TestWriteText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, testDiff()))
	out := buf.String()

	assert.Contains(t, out, "Comparing: old.xlsx <-> new.xlsx")
	assert.Contains(t, out, "[Sheet: Data]")
	assert.Contains(t, out, "  Row 2 MODIFIED")
	assert.Contains(t, out, `    Column B: "2" -> "9"`)
	assert.Contains(t, out, "  Row 3 ADDED")
	assert.Contains(t, out, "    + D|4")
	assert.Contains(t, out, "  Row 4 DELETED")
	assert.Contains(t, out, "    - E|5")
	assert.Contains(t, out, "[Sheet ADDED] Fresh")
	assert.Contains(t, out, "[Sheet DELETED] Gone")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Rows added: 1")
	assert.Contains(t, out, "Rows deleted: 1")
	assert.Contains(t, out, "Rows modified: 1")
	assert.Contains(t, out, "Sheets added: 1")
}

func TestWriteText_NoChanges(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, &models.WorkbookDiff{OldFile: "a", NewFile: "b"}))

	assert.Contains(t, buf.String(), "No changes detected.")
}

func TestWriteText_ModifiedRowShowsOldPosition(t *testing.T) {
	color.NoColor = true
	oldRow := models.NewRow(5, models.Text("B"))
	newRow := models.NewRow(7, models.Text("C"))
	d := &models.WorkbookDiff{
		OldFile: "a", NewFile: "b",
		SheetChanges: []models.SheetChange{{
			Type: models.ChangeModified, Sheet: "S",
			RowChanges: []models.RowChange{{
				Type: models.ChangeModified, Sheet: "S",
				OldNumber: 5, NewNumber: 7,
				OldRow: &oldRow, NewRow: &newRow,
				CellChanges: []models.CellChange{
					{Column: 0, OldValue: models.Text("B"), NewValue: models.Text("C")},
				},
			}},
		}},
	}
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, d))

	assert.Contains(t, buf.String(), "Row 7 MODIFIED (was row 5)")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, testDiff()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 6) // header + cell_modified + row_added + row_deleted + 2 sheet records
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "cell_modified", records[1][0])
	assert.Equal(t, "B", records[1][4])
	assert.Equal(t, "B2", records[1][5])
	assert.Equal(t, "row_added", records[2][0])
	assert.Equal(t, "D|4", records[2][7])
	assert.Equal(t, "row_deleted", records[3][0])
	assert.Equal(t, "E|5", records[3][6])
	assert.Equal(t, "sheet_added", records[4][0])
	assert.Equal(t, "sheet_deleted", records[5][0])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, testDiff(), true))

	var decoded struct {
		OldFile string `json:"old_file"`
		Summary struct {
			RowsModified int `json:"rows_modified"`
			SheetsAdded  int `json:"sheets_added"`
		} `json:"summary"`
		SheetChanges []struct {
			Type string `json:"type"`
		} `json:"sheet_changes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "old.xlsx", decoded.OldFile)
	assert.Equal(t, 1, decoded.Summary.RowsModified)
	assert.Equal(t, 1, decoded.Summary.SheetsAdded)
	require.Len(t, decoded.SheetChanges, 3)
	assert.Equal(t, "modified", decoded.SheetChanges[0].Type)
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"text", "csv", "json"} {
		f, err := ParseFormat(valid)
		assert.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
