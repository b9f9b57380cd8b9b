package differ

import (
	"sort"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
)

// Score returns the fraction of column positions with equal values between two
// rows, the shorter row padded with absent cells to the wider row's width.
// Two zero-width rows score 1.
func Score(a, b models.Row) float64 {
	width := a.Width()
	if b.Width() > width {
		width = b.Width()
	}
	if width == 0 {
		return 1
	}
	equal := 0
	for i := 0; i < width; i++ {
		if a.Cell(i).Equal(b.Cell(i)) {
			equal++
		}
	}
	return float64(equal) / float64(width)
}

type candidate struct {
	old, new int
	score    float64
}

// MatchSimilar pairs rows left over from exact matching whose positional
// overlap reaches the threshold. Candidate pairs are ranked by score
// descending, then old position, then new position, and claimed greedily:
// a contested new row goes to the strictly higher score, equal scores to the
// lower old position. Returns the accepted matches in ascending old order plus
// the indices still unclaimed on each side.
func MatchSimilar(oldRows, newRows []models.Row, unmatchedOld, unmatchedNew []int, threshold float64) (matches []Match, remainingOld, remainingNew []int) {
	var candidates []candidate
	for _, i := range unmatchedOld {
		for _, j := range unmatchedNew {
			if s := Score(oldRows[i], newRows[j]); s >= threshold {
				candidates = append(candidates, candidate{old: i, new: j, score: s})
			}
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		if candidates[a].old != candidates[b].old {
			return candidates[a].old < candidates[b].old
		}
		return candidates[a].new < candidates[b].new
	})

	claimedOld := make(map[int]bool, len(unmatchedOld))
	claimedNew := make(map[int]bool, len(unmatchedNew))
	for _, c := range candidates {
		if claimedOld[c.old] || claimedNew[c.new] {
			continue
		}
		claimedOld[c.old] = true
		claimedNew[c.new] = true
		matches = append(matches, Match{Kind: MatchSimilarKind, Old: c.old, New: c.new, Score: c.score})
	}

	sort.Slice(matches, func(a, b int) bool { return matches[a].Old < matches[b].Old })

	for _, i := range unmatchedOld {
		if !claimedOld[i] {
			remainingOld = append(remainingOld, i)
		}
	}
	for _, j := range unmatchedNew {
		if !claimedNew[j] {
			remainingNew = append(remainingNew, j)
		}
	}
	return matches, remainingOld, remainingNew
}
