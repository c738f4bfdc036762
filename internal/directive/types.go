package directive

import "nxdate-generator/internal/common"

// Family is the output family of a directive: what the generated accessor returns.
type Family int

const (
	FamilyText Family = iota // accessor returns a formatted string
	FamilyDate               // accessor returns a nullable date
)

// String returns a human-readable representation of the Family.
func (f Family) String() string {
	switch f {
	case FamilyText:
		return "text"
	case FamilyDate:
		return "date"
	default:
		return common.UnknownStr
	}
}

// Directive keywords as written after the "nxdate:" comment prefix.
const (
	KeywordExtension      = "extension"
	KeywordIgnore         = "ignore"
	KeywordStringToString = "stringToString"
	KeywordStringToDate   = "stringToDate"
	KeywordLongToString   = "longToString"
	KeywordLongToDate     = "longToDate"
	KeywordDateToString   = "dateToString"
)

// Directive is one conversion instruction attached to a field.
// The set of implementations is closed.
type Directive interface {
	// Keyword returns the comment keyword of the directive.
	Keyword() string
	// Family returns the output family of the generated accessor.
	Family() Family
	// Prefix returns the name prefix of the generated accessor.
	Prefix() string

	sealed()
}

// TextToText reformats a string field from one pattern to another.
type TextToText struct {
	OriginPattern string
	TargetPattern string
	NamePrefix    string
}

// TextToDate parses a string field into a date.
type TextToDate struct {
	OriginPattern string
	NamePrefix    string
}

// IntegerToText formats a millisecond timestamp field.
type IntegerToText struct {
	TargetPattern string
	NamePrefix    string
}

// IntegerToDate converts a millisecond timestamp field into a date.
type IntegerToDate struct {
	NamePrefix string
}

// DateToText formats a time.Time field.
type DateToText struct {
	TargetPattern string
	NamePrefix    string
}

func (TextToText) Keyword() string    { return KeywordStringToString }
func (TextToDate) Keyword() string    { return KeywordStringToDate }
func (IntegerToText) Keyword() string { return KeywordLongToString }
func (IntegerToDate) Keyword() string { return KeywordLongToDate }
func (DateToText) Keyword() string    { return KeywordDateToString }

func (TextToText) Family() Family    { return FamilyText }
func (TextToDate) Family() Family    { return FamilyDate }
func (IntegerToText) Family() Family { return FamilyText }
func (IntegerToDate) Family() Family { return FamilyDate }
func (DateToText) Family() Family    { return FamilyText }

func (d TextToText) Prefix() string    { return d.NamePrefix }
func (d TextToDate) Prefix() string    { return d.NamePrefix }
func (d IntegerToText) Prefix() string { return d.NamePrefix }
func (d IntegerToDate) Prefix() string { return d.NamePrefix }
func (d DateToText) Prefix() string    { return d.NamePrefix }

func (TextToText) sealed()    {}
func (TextToDate) sealed()    {}
func (IntegerToText) sealed() {}
func (IntegerToDate) sealed() {}
func (DateToText) sealed()    {}
