// Package differ implements content-based row matching between two versions
// of a sheet: an exact pass over canonical fingerprints, a positional
// similarity pass over the remainder, and cell-level change detection for
// matched pairs.
package differ

import (
	"strconv"
	"strings"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// Fingerprint returns the canonical comparison key of a row. Each cell is
// encoded as a kind tag plus a length-prefixed canonical string, so no cell
// content can collide with the encoding. Trailing absent cells are excluded,
// which makes rows that differ only in trailing empty cells compare equal.
func Fingerprint(r models.Row) string {
	width := len(r.Cells)
	for width > 0 && r.Cells[width-1].IsAbsent() {
		width--
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		v := r.Cell(i)
		c := v.Canonical()
		b.WriteByte('0' + byte(v.Kind))
		b.WriteString(strconv.Itoa(len(c)))
		b.WriteByte(':')
		b.WriteString(c)
	}
	return b.String()
}
