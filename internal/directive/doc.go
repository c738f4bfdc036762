// Package directive defines the closed vocabulary of date/time conversion
// directives a struct field can carry, and parses them from comment lines.
//
// Directives are written in the field's doc comment:
//
//	//nxdate:stringToDate originPattern:"yyyy-MM-dd" prefix:"nx_"
//	//nxdate:stringToString originPattern:"yyyy-MM-dd" targetPattern:"yyyy MMM dd" prefix:"nx_"
//	DateOne string
//
// The struct itself is marked with //nxdate:extension. A field can be
// excluded with //nxdate:ignore.
package directive
