package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

func TestScore_PositionalOverlap(t *testing.T) {
	a := textRow(1, "A", "B", "C", "D")
	b := textRow(1, "A", "B", "x", "y")

	assert.Equal(t, 0.5, Score(a, b))
}

func TestScore_WiderRowPadsWithAbsent(t *testing.T) {
	short := textRow(1, "A", "B")
	wide := textRow(1, "A", "B", "C", "D")

	// Columns 2 and 3 compare absent vs text.
	assert.Equal(t, 0.5, Score(short, wide))
}

func TestScore_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Score(textRow(1), textRow(2)))
}

func TestMatchSimilar_ThresholdBoundary(t *testing.T) {
	// GIVEN rows of width 4 sharing exactly 2 columns (score 0.5)
	oldRows := []models.Row{textRow(1, "A", "B", "C", "D")}
	newRows := []models.Row{textRow(1, "A", "B", "x", "y")}

	// WHEN matched at the default threshold
	matches, remainingOld, remainingNew := MatchSimilar(oldRows, newRows, []int{0}, []int{0}, 0.5)

	// THEN the boundary score is accepted
	require.Len(t, matches, 1)
	assert.Equal(t, 0.5, matches[0].Score)
	assert.Empty(t, remainingOld)
	assert.Empty(t, remainingNew)
}

func TestMatchSimilar_BelowThreshold(t *testing.T) {
	oldRows := []models.Row{textRow(1, "A", "B", "C", "D")}
	newRows := []models.Row{textRow(1, "A", "x", "y", "z")}

	matches, remainingOld, remainingNew := MatchSimilar(oldRows, newRows, []int{0}, []int{0}, 0.5)

	assert.Empty(t, matches)
	assert.Equal(t, []int{0}, remainingOld)
	assert.Equal(t, []int{0}, remainingNew)
}

func TestMatchSimilar_HigherScoreWinsContestedRow(t *testing.T) {
	oldRows := []models.Row{
		textRow(1, "A", "B", "x", "y"), // score 0.5 against the new row
		textRow(2, "A", "B", "C", "y"), // score 0.75 against the new row
	}
	newRows := []models.Row{textRow(1, "A", "B", "C", "D")}

	matches, remainingOld, _ := MatchSimilar(oldRows, newRows, []int{0, 1}, []int{0}, 0.5)

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Old)
	assert.Equal(t, 0.75, matches[0].Score)
	assert.Equal(t, []int{0}, remainingOld)
}

func TestMatchSimilar_EqualScoreTieGoesToLowerOldPosition(t *testing.T) {
	oldRows := []models.Row{
		textRow(1, "A", "B", "x", "y"),
		textRow(2, "A", "B", "p", "q"),
	}
	newRows := []models.Row{textRow(1, "A", "B", "C", "D")}

	matches, remainingOld, _ := MatchSimilar(oldRows, newRows, []int{0, 1}, []int{0}, 0.5)

	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Old)
	assert.Equal(t, []int{1}, remainingOld)
}

func TestMatchSimilar_LoserFallsThroughToNextBest(t *testing.T) {
	oldRows := []models.Row{
		textRow(1, "A", "B", "C", "x"), // 0.75 vs new0, 0.5 vs new1
		textRow(2, "A", "B", "C", "D"), // 1.0 vs new0 (hypothetical near-match)
	}
	newRows := []models.Row{
		textRow(1, "A", "B", "C", "D"),
		textRow(2, "A", "B", "p", "q"),
	}

	matches, remainingOld, remainingNew := MatchSimilar(oldRows, newRows, []int{0, 1}, []int{0, 1}, 0.5)

	require.Len(t, matches, 2)
	// old1 takes new0 with the higher score, old0 falls through to new1.
	assert.Equal(t, Match{Kind: MatchSimilarKind, Old: 0, New: 1, Score: 0.5}, matches[0])
	assert.Equal(t, Match{Kind: MatchSimilarKind, Old: 1, New: 0, Score: 1}, matches[1])
	assert.Empty(t, remainingOld)
	assert.Empty(t, remainingNew)
}
