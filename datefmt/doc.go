// Package datefmt is the runtime helper library called by accessors that
// nxdate-generator emits.
//
// Patterns use Joda style letters (yyyy, MM, dd, HH, mm, ss, MMM, EEEE, ...),
// which is the notation directives are written in. Every helper tolerates
// bad input: text helpers return "" and date helpers return nil instead of
// failing.
package datefmt
