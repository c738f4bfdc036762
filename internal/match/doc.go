// Package match provides fuzzy name matching used to suggest the intended
// directive keyword or parameter key when a directive is misspelled.
//
// Key functions:
//   - NormalizeIdent: folds case and drops separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known name
package match
