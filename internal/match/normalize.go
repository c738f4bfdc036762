package match

import "strings"

// NormalizeIdent lower-cases s and strips separators, so that
// "string_to_date", "StringToDate" and "string-to-date" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}

	return strings.ToLower(b.String())
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
