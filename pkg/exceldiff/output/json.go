package output

import (
	"encoding/json"
	"io"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// jsonDiff wraps the diff with its summary for serialized output.
type jsonDiff struct {
	*models.WorkbookDiff
	Summary models.Summary `json:"summary"`
}

// ToJSON serializes the diff, optionally indented.
func ToJSON(d *models.WorkbookDiff, pretty bool) ([]byte, error) {
	wrapped := jsonDiff{WorkbookDiff: d, Summary: d.Summary()}
	if pretty {
		return json.MarshalIndent(wrapped, "", "  ")
	}
	return json.Marshal(wrapped)
}

// WriteJSON renders the diff as JSON followed by a newline.
func WriteJSON(w io.Writer, d *models.WorkbookDiff, pretty bool) error {
	b, err := ToJSON(d, pretty)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
