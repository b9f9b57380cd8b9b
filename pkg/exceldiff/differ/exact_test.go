package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchExact_AllMatched(t *testing.T) {
	oldFPs := []string{"a", "b", "c"}
	newFPs := []string{"c", "a", "b"}

	matches, unmatchedOld, unmatchedNew := MatchExact(oldFPs, newFPs)

	require.Len(t, matches, 3)
	assert.Empty(t, unmatchedOld)
	assert.Empty(t, unmatchedNew)
	assert.Equal(t, Match{Kind: MatchExactKind, Old: 0, New: 1, Score: 1}, matches[0])
	assert.Equal(t, Match{Kind: MatchExactKind, Old: 1, New: 2, Score: 1}, matches[1])
	assert.Equal(t, Match{Kind: MatchExactKind, Old: 2, New: 0, Score: 1}, matches[2])
}

func TestMatchExact_DuplicatesClaimEarliestUnclaimed(t *testing.T) {
	oldFPs := []string{"x", "x"}
	newFPs := []string{"y", "x", "x"}

	matches, unmatchedOld, unmatchedNew := MatchExact(oldFPs, newFPs)

	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].New)
	assert.Equal(t, 2, matches[1].New)
	assert.Empty(t, unmatchedOld)
	assert.Equal(t, []int{0}, unmatchedNew)
}

func TestMatchExact_Unmatched(t *testing.T) {
	oldFPs := []string{"a", "gone"}
	newFPs := []string{"a", "new"}

	matches, unmatchedOld, unmatchedNew := MatchExact(oldFPs, newFPs)

	require.Len(t, matches, 1)
	assert.Equal(t, []int{1}, unmatchedOld)
	assert.Equal(t, []int{1}, unmatchedNew)
}

func TestMatchExact_MoreOldThanNewDuplicates(t *testing.T) {
	oldFPs := []string{"x", "x", "x"}
	newFPs := []string{"x"}

	matches, unmatchedOld, unmatchedNew := MatchExact(oldFPs, newFPs)

	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Old)
	assert.Equal(t, []int{1, 2}, unmatchedOld)
	assert.Empty(t, unmatchedNew)
}
