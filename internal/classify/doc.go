// Package classify determines the carrier type of an annotated field and
// buckets its directives by output family.
//
// Carriers:
//   - Text: string, or a string-based type of the declaring package
//   - Integer: int64 millisecond timestamps, or an int64-based type of the declaring package
//   - Date: time.Time
//
// Anything else is unsupported.
package classify
