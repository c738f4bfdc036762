// Package gen provides deterministic Go code generation for date accessors.
//
// Generation approach uses text/template + go/format. Each marked
// declaration gets exactly one generated file in its own package holding a
// value-receiver method per planned accessor. The file header names the
// originating source file and its digest, so a unit is regenerated exactly
// when its source changes.
package gen
