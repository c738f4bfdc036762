package analyze

import (
	"go/token"
	"slices"

	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/directive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "nxdate-generator/examples/basic"
	Name    string // e.g., "DateTest"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldType is the type identity of a field as seen by go/types.
type FieldType struct {
	// Name is the type string qualified by package path,
	// e.g. "string", "int64", "time.Time", "*time.Time", "example/p.Millis".
	Name string
	// Underlying is the name of the predeclared underlying type for named
	// basic types (e.g. "string" for `type ISODate string`), empty otherwise.
	Underlying string
}

// IsNamedBasic reports whether the type is a defined type over a basic type.
func (t FieldType) IsNamedBasic() bool {
	return t.Underlying != "" && t.Underlying != t.Name
}

// Field describes one struct field of a marked declaration.
type Field struct {
	Name       string                // Go field name
	Type       FieldType             // Field type identity
	Directives []directive.Directive // Attached directives in source order
	Ignored    bool                  // Field carries //nxdate:ignore
	Embedded   bool                  // Field is embedded (anonymous)
	Pos        token.Position        // Position of the field name
}

// Declaration is a struct type carrying the //nxdate:extension marker.
type Declaration struct {
	ID         TypeID         // Qualified identity
	PkgName    string         // Package name (the namespace of the generated unit)
	Dir        string         // Package directory on disk (empty for in-memory sources)
	SourceFile string         // File declaring the struct
	SourceHash string         // sha256 of SourceFile, hex encoded
	Fields     []Field        // Declared fields in source order
	Members    []string       // Existing field and method names, excluding generated ones
	Pos        token.Position // Position of the type name
}

// Name returns the unqualified declaration name.
func (d *Declaration) Name() string {
	return d.ID.Name
}

// HasMember reports whether name is already a field or method of the declaration.
func (d *Declaration) HasMember(name string) bool {
	return slices.Contains(d.Members, name)
}

// Result is the outcome of a discovery pass.
type Result struct {
	// Declarations are the marked structs in package, file and source order.
	Declarations []*Declaration
	// Packages maps package paths to their directories, for every package loaded.
	Packages map[string]string
	// Diagnostics holds malformed directives and unsupported marked types.
	Diagnostics diagnostic.Diagnostics
}
