package diagfmt

import (
	"io"

	"github.com/goccy/go-json"

	"nxdate-generator/internal/diagnostic"
)

// Report is the JSON document written by JSON.
type Report struct {
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
	Errors      int                     `json:"errors"`
	Warnings    int                     `json:"warnings"`
	// Files lists the unit paths a command wrote, found stale or pruned.
	Files []string `json:"files,omitempty"`
}

// JSON writes diags, errors first, together with the affected files.
func JSON(w io.Writer, diags diagnostic.Diagnostics, files []string) error {
	report := Report{
		Diagnostics: diags.All(),
		Errors:      len(diags.Errors),
		Warnings:    len(diags.Warnings),
		Files:       files,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
