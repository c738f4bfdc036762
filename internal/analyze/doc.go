// Package analyze discovers struct declarations marked for date accessor
// generation.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// in-memory model of every marked struct, its fields and the directives
// attached to them.
//
// Key types:
//   - Declaration: a marked struct with its package, source file and fields
//   - Field: field name, raw type identity, directives and position
//   - FieldType: the go/types identity the classifier dispatches on
package analyze
