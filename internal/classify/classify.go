package classify

import (
	"errors"
	"fmt"

	"nxdate-generator/internal/analyze"
	"nxdate-generator/internal/common"
	"nxdate-generator/internal/directive"
)

// Carrier is the primitive data shape of a field before conversion.
type Carrier int

const (
	CarrierUnsupported Carrier = iota
	CarrierText                // string
	CarrierInteger             // int64 millisecond timestamp
	CarrierDate                // time.Time
)

// String returns a human-readable representation of the Carrier.
func (c Carrier) String() string {
	switch c {
	case CarrierText:
		return "text"
	case CarrierInteger:
		return "integer timestamp"
	case CarrierDate:
		return "date"
	default:
		return common.UnknownStr
	}
}

// Classification failures.
var (
	ErrUnsupportedType  = errors.New("unsupported type")
	ErrMissingDirective = errors.New("missing directive")
)

// Error is a field-scoped classification failure.
type Error struct {
	Declaration string // qualified declaration name
	Field       string
	TypeName    string
	Carrier     Carrier
	Err         error // ErrUnsupportedType or ErrMissingDirective
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnsupportedType) {
		return fmt.Sprintf("%s.%s: %s %s", e.Declaration, e.Field, e.Err, e.TypeName)
	}

	return fmt.Sprintf("%s.%s: %s for %s field", e.Declaration, e.Field, e.Err, e.Carrier)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classified is a field whose carrier is supported and which carries at
// least one compatible directive.
type Classified struct {
	Field   analyze.Field
	Carrier Carrier
	// Conversion is the basic type the field value must be converted to
	// before it is handed to a helper, empty when no conversion is needed.
	Conversion string
	// Text holds the directives producing string accessors, in source order.
	Text []directive.Directive
	// Date holds the directives producing date accessors, in source order.
	Date []directive.Directive
}

// Families returns how many output families are present on the field.
func (c *Classified) Families() int {
	return common.CountNonEmpty(c.Text, c.Date)
}

// CarrierOf maps a field type to its carrier.
func CarrierOf(t analyze.FieldType) (Carrier, string) {
	switch t.Name {
	case "string":
		return CarrierText, ""
	case "int64":
		return CarrierInteger, ""
	case "time.Time":
		return CarrierDate, ""
	}

	if !t.IsNamedBasic() {
		return CarrierUnsupported, ""
	}

	switch t.Underlying {
	case "string":
		return CarrierText, t.Underlying
	case "int64":
		return CarrierInteger, t.Underlying
	default:
		return CarrierUnsupported, ""
	}
}

// Classify determines the carrier of field and collects its directives.
func Classify(decl *analyze.Declaration, field analyze.Field) (*Classified, error) {
	carrier, conversion := CarrierOf(field.Type)

	c := &Classified{
		Field:      field,
		Carrier:    carrier,
		Conversion: conversion,
	}

	for _, d := range field.Directives {
		switch d.(type) {
		case directive.TextToText:
			if carrier == CarrierText {
				c.Text = append(c.Text, d)
			}
		case directive.TextToDate:
			if carrier == CarrierText {
				c.Date = append(c.Date, d)
			}
		case directive.IntegerToText:
			if carrier == CarrierInteger {
				c.Text = append(c.Text, d)
			}
		case directive.IntegerToDate:
			if carrier == CarrierInteger {
				c.Date = append(c.Date, d)
			}
		case directive.DateToText:
			if carrier == CarrierDate {
				c.Text = append(c.Text, d)
			}
		}
	}

	if carrier == CarrierUnsupported {
		return nil, &Error{
			Declaration: decl.ID.String(),
			Field:       field.Name,
			TypeName:    field.Type.Name,
			Carrier:     carrier,
			Err:         ErrUnsupportedType,
		}
	}

	if c.Families() == 0 {
		return nil, &Error{
			Declaration: decl.ID.String(),
			Field:       field.Name,
			TypeName:    field.Type.Name,
			Carrier:     carrier,
			Err:         ErrMissingDirective,
		}
	}

	return c, nil
}
