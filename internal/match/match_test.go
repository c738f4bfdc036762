package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"stringtodate", "stringtodata", 1},
		{"longtodate", "longtostring", 6},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	for _, in := range []string{"stringToDate", "string_to_date", "String-To-Date", "STRINGTODATE"} {
		assert.Equal(t, "stringtodate", NormalizeIdent(in), in)
	}

	assert.Empty(t, NormalizeIdent(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("originPattern", "origin_pattern"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestSuggest(t *testing.T) {
	keywords := []string{"stringToString", "stringToDate", "longToString", "longToDate", "dateToString"}

	assert.Equal(t, "stringToDate", Suggest("string_to_date", keywords))
	assert.Equal(t, "longToDate", Suggest("longToDat", keywords))
	assert.Equal(t, "dateToString", Suggest("DateToStrng", keywords))
	assert.Empty(t, Suggest("extension", keywords))
	assert.Empty(t, Suggest("stringToDate", []string{"stringToDate"}), "exact names are not suggestions")
}

func TestSuggestSorted(t *testing.T) {
	keys := map[string]bool{"targetPattern": true, "originPattern": true, "prefix": true}

	assert.Equal(t, "targetPattern", SuggestSorted("targetPatern", keys))
	assert.Equal(t, "prefix", SuggestSorted("prefx", keys))
	assert.Empty(t, SuggestSorted("zone", keys))
}
