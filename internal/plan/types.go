package plan

import (
	"go/token"

	"nxdate-generator/internal/common"
	"nxdate-generator/internal/directive"
)

// ResultKind is the result type of a generated accessor.
type ResultKind int

const (
	ResultText ResultKind = iota // string
	ResultDate                   // *time.Time
)

// String returns a human-readable representation of the ResultKind.
func (k ResultKind) String() string {
	switch k {
	case ResultText:
		return "text"
	case ResultDate:
		return "date"
	default:
		return common.UnknownStr
	}
}

// Result describes the value an accessor returns.
type Result struct {
	Kind     ResultKind
	Nullable bool // absent when the helper could not produce a value
}

// GoType returns the Go result type of the accessor.
func (r Result) GoType() string {
	switch {
	case r.Kind == ResultDate && r.Nullable:
		return "*time.Time"
	case r.Kind == ResultDate:
		return "time.Time"
	default:
		return "string"
	}
}

// Helper function names of the runtime package.
const (
	HelperChangeFormat = "ChangeFormat"
	HelperParseDate    = "ParseDate"
	HelperFormatMillis = "FormatMillis"
	HelperMillisToDate = "MillisToDate"
	HelperFormatDate   = "FormatDate"
)

// Arg is one argument of a helper call: the receiver's field value or a
// string literal resolved at generation time.
type Arg struct {
	Field      string // field name when the argument is the field value
	Conversion string // basic type the field value is converted to, if any
	Literal    string // literal value otherwise
}

// IsField reports whether the argument reads the field value.
func (a Arg) IsField() bool {
	return a.Field != ""
}

// Expr is the single expression an accessor evaluates: one helper call.
type Expr struct {
	Helper string
	Args   []Arg
}

// Accessor is one planned read-only computed accessor.
type Accessor struct {
	// Name is the generated method name.
	Name string
	// Field is the source field name.
	Field string
	// Result is the result type.
	Result Result
	// Expr is the body expression.
	Expr Expr
	// Doc is the first sentence of the generated doc comment, without the name.
	Doc string
	// Directive is the directive the accessor was planned from.
	Directive directive.Directive
	// Pos is the position of the source field.
	Pos token.Position
}
