package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// CountNonEmpty returns how many of the given slices have at least one element.
func CountNonEmpty[S ~[]E, E any](groups ...S) int {
	n := 0
	for _, g := range groups {
		if !IsEmpty(g) {
			n++
		}
	}

	return n
}
