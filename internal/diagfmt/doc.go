// Package diagfmt renders diagnostics for the command line, either as
// human-readable lines or as JSON.
package diagfmt
