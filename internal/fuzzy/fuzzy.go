// Package fuzzy scores user queries against city names.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MatchThreshold is the minimum partial-ratio score considered a match.
const MatchThreshold = 70

// Match reports whether query is a fuzzy match for candidate. Matching is
// case-insensitive and tolerant of extra characters in the candidate, so
// "york" matches "New York" and a minor misspelling still scores above the
// threshold.
func Match(query, candidate string) bool {
	return PartialRatio(query, candidate) >= MatchThreshold
}

// PartialRatio returns a 0-100 similarity score between the shorter input and
// its best-matching equal-length window of the longer one. The score is based
// on Levenshtein distance, so it degrades smoothly with edits rather than
// requiring literal substring containment. An empty string scores 100 against
// anything.
func PartialRatio(a, b string) int {
	shorter := []rune(strings.ToLower(a))
	longer := []rune(strings.ToLower(b))
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 100
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := longer[i : i+len(shorter)]
		dist := levenshtein.ComputeDistance(string(shorter), string(window))
		score := 100 * (len(shorter) - dist) / len(shorter)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}
