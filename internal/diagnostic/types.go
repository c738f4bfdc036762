package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"nxdate-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeProcessing             = "Processing"
	CodeUnsupportedType        = "UnsupportedType"
	CodeMissingDirective       = "MissingDirective"
	CodeMalformedDirective     = "MalformedDirective"
	CodeUnsupportedDeclaration = "UnsupportedDeclaration"
	CodeInvalidName            = "InvalidName"
	CodeDuplicateAccessor      = "DuplicateAccessor"
	CodeNameConflict           = "NameConflict"
	CodeDuplicateUnit          = "DuplicateUnit"
	CodeEmitFailed             = "EmitFailed"
	CodeStale                  = "Stale"
)

// Diagnostics holds all diagnostic information from one generation pass.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Declaration is the qualified name of the declaration (if any).
	Declaration string `json:"declaration,omitempty"`
	// Field is the name of the field this relates to (if any).
	Field string `json:"field,omitempty"`
	// Pos is the source position, "file:line:col" (if known).
	Pos string `json:"pos,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Add appends a diagnostic to the bucket matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, declaration, field, pos string) {
	d.Add(Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Field:       field,
		Pos:         pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, declaration, field, pos string) {
	d.Add(Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Field:       field,
		Pos:         pos,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, declaration, field, pos string) {
	d.Add(Diagnostic{
		Severity:    SeverityInfo,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Field:       field,
		Pos:         pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos != "" {
		prefix = append(prefix, d.Pos)
	}

	if d.Declaration != "" {
		target := d.Declaration
		if d.Field != "" {
			target += "." + d.Field
		}

		prefix = append(prefix, "["+target+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Pos renders p as "file:line:col", or "" when p is unknown.
func Pos(p token.Position) string {
	if !p.IsValid() {
		return ""
	}

	return p.String()
}
