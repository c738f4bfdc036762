package datefmt

import (
	"time"

	"github.com/vjeantet/jodaTime"
)

// Location is the zone timestamps are converted into and the zone assumed
// for parsed values that carry no zone of their own.
var Location = time.Local

// ChangeFormat parses value with originPattern and formats it with
// targetPattern. It returns "" when value does not match originPattern.
func ChangeFormat(value, originPattern, targetPattern string) string {
	t := ParseDate(value, originPattern)
	if t == nil {
		return ""
	}

	return jodaTime.Format(targetPattern, *t)
}

// ParseDate parses value with originPattern. It returns nil for empty or
// non-matching values.
func ParseDate(value, originPattern string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := jodaTime.Parse(originPattern, value)
	if err != nil {
		return nil
	}

	// Values without a zone come back in UTC; read their wall clock in Location.
	if t.Location() == time.UTC && Location != time.UTC {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), Location)
	}

	return &t
}

// FormatMillis formats a Unix timestamp in milliseconds with targetPattern.
func FormatMillis(ms int64, targetPattern string) string {
	return jodaTime.Format(targetPattern, fromMillis(ms))
}

// MillisToDate converts a Unix timestamp in milliseconds to a time.
// Zero means unset and yields nil.
func MillisToDate(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}

	t := fromMillis(ms)

	return &t
}

// FormatDate formats t with targetPattern. The zero time yields "".
func FormatDate(t time.Time, targetPattern string) string {
	if t.IsZero() {
		return ""
	}

	return jodaTime.Format(targetPattern, t)
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(Location)
}
