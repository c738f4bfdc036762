package match

import "slices"

// MinSimilarity is the score a candidate needs before it is suggested.
const MinSimilarity = 0.6

// Suggest returns the candidate closest to name, or "" when none scores at
// least MinSimilarity. Ties go to the candidate listed first.
func Suggest(name string, candidates []string) string {
	best, bestScore := "", MinSimilarity

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score > bestScore || (score == bestScore && best == "") {
			best, bestScore = c, score
		}
	}

	return best
}

// SuggestSorted is Suggest over the sorted keys of a set.
func SuggestSorted[V any](name string, set map[string]V) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return Suggest(name, keys)
}
