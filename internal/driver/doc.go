// Package driver runs one generation pass: it takes the marked declarations
// found by the analyzer and pushes each one through classification,
// planning and emission.
//
// All failures are scoped to a field or a declaration. A pass always
// completes and reports what it produced together with its diagnostics.
package driver
