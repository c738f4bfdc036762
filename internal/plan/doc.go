// Package plan decides which accessors to generate for classified fields.
//
// For each directive it produces one Accessor: its generated name, its
// result type and the helper call it evaluates. Naming rules:
//  1. One output family on the field: {prefix}{field}
//  2. Both families on the field: {prefix}{textInfix}{field} for string
//     accessors and {prefix}{dateInfix}{field} for date accessors
//
// Name problems (invalid identifiers, duplicates, clashes with existing
// members) are resolved per declaration and reported as diagnostics.
package plan
