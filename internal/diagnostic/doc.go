// Package diagnostic provides structured warnings, errors, and
// informational messages produced while generating date accessors.
//
// Every diagnostic is scoped to a declaration and, when relevant, one of its
// fields. Diagnostics never abort a generation pass: the affected accessor is
// skipped and the rest of the pass continues.
package diagnostic
