package differ

// MatchKind discriminates how a row correspondence was discovered.
type MatchKind uint8

const (
	// MatchExactKind marks a pairing with identical fingerprints.
	MatchExactKind MatchKind = iota
	// MatchSimilarKind marks a pairing accepted by the similarity pass.
	MatchSimilarKind
)

// Match is one row correspondence between the old and new row sequences.
// Old and New are 0-based indices into the respective row slices.
type Match struct {
	Kind  MatchKind
	Old   int
	New   int
	Score float64
}

// MatchExact pairs rows with identical fingerprints. Old rows are visited in
// original order; each claims the earliest still-unclaimed new row sharing its
// fingerprint, so relative order is preserved under duplicate content.
// Returns the matches plus the old and new indices left unclaimed, both in
// ascending order.
func MatchExact(oldFPs, newFPs []string) (matches []Match, unmatchedOld, unmatchedNew []int) {
	index := make(map[string][]int, len(newFPs))
	for i, fp := range newFPs {
		index[fp] = append(index[fp], i)
	}

	claimedNew := make([]bool, len(newFPs))
	for i, fp := range oldFPs {
		candidates := index[fp]
		if len(candidates) == 0 {
			unmatchedOld = append(unmatchedOld, i)
			continue
		}
		j := candidates[0]
		index[fp] = candidates[1:]
		claimedNew[j] = true
		matches = append(matches, Match{Kind: MatchExactKind, Old: i, New: j, Score: 1})
	}

	for j := range newFPs {
		if !claimedNew[j] {
			unmatchedNew = append(unmatchedNew, j)
		}
	}
	return matches, unmatchedOld, unmatchedNew
}
