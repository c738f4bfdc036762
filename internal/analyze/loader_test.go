package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/directive"
)

const examplePkg = "nxdate-generator/examples/basic"

func findField(t *testing.T, d *Declaration, name string) Field {
	t.Helper()

	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}

	t.Fatalf("field %s not found in %s", name, d.ID)

	return Field{}
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer("_nxdate.go")
	res, err := analyzer.LoadPackages(examplePkg)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Contains(t, res.Packages, examplePkg)
	assert.NotEmpty(t, res.Packages[examplePkg])
	assert.False(t, res.Diagnostics.HasErrors())

	var names []string
	for _, d := range res.Declarations {
		names = append(names, d.Name())
	}

	assert.Equal(t, []string{"DateTest", "DateTimeTest", "UserDTO"}, names)
}

func TestAnalyzer_DeclarationDetails(t *testing.T) {
	analyzer := NewAnalyzer("_nxdate.go")
	res, err := analyzer.LoadPackages(examplePkg)
	require.NoError(t, err)
	require.Len(t, res.Declarations, 3)

	d := res.Declarations[0]
	assert.Equal(t, TypeID{PkgPath: examplePkg, Name: "DateTest"}, d.ID)
	assert.Equal(t, "basic", d.PkgName)
	assert.Equal(t, "models.go", d.SourceFile)
	assert.Len(t, d.SourceHash, 64)

	dateOne := findField(t, d, "DateOne")
	assert.Equal(t, "string", dateOne.Type.Name)
	require.Len(t, dateOne.Directives, 2)
	assert.Equal(t, directive.TextToDate{OriginPattern: "yyyy-MM-dd", NamePrefix: "nx_"}, dateOne.Directives[0])
	assert.Equal(t, directive.TextToText{
		OriginPattern: "yyyy-MM-dd", TargetPattern: "yyyy MMM dd", NamePrefix: "nx_",
	}, dateOne.Directives[1])

	dateTwo := findField(t, d, "DateTwo")
	assert.Equal(t, "time.Time", dateTwo.Type.Name)
	assert.Empty(t, dateTwo.Type.Underlying)
}

func TestAnalyzer_NamedBasicAndIgnore(t *testing.T) {
	analyzer := NewAnalyzer("_nxdate.go")
	res, err := analyzer.LoadPackages(examplePkg)
	require.NoError(t, err)
	require.Len(t, res.Declarations, 3)

	user := res.Declarations[2]

	birthday := findField(t, user, "Birthday")
	assert.Equal(t, examplePkg+".ISODate", birthday.Type.Name)
	assert.Equal(t, "string", birthday.Type.Underlying)
	assert.True(t, birthday.Type.IsNamedBasic())

	lastSeen := findField(t, user, "LastSeen")
	assert.Equal(t, "int64", lastSeen.Type.Underlying)

	assert.True(t, findField(t, user, "ID").Ignored)
	assert.True(t, findField(t, user, "Email").Ignored)

	assert.True(t, user.HasMember("DisplayName"))
	assert.True(t, user.HasMember("CreatedAt"))
	assert.False(t, user.HasMember("ShortCreatedAt"))
}

func TestAnalyzer_LoadSource_Diagnostics(t *testing.T) {
	src := `package p

import "time"

//nxdate:extension
type Alias = struct{}

//nxdate:extension
type Box[T any] struct{ V T }

//nxdate:extension
type Code int

// Plain is not marked and must be skipped.
type Plain struct {
	//nxdate:longToDate
	At int64
}

//nxdate:extension
type Event struct {
	//nxdate:dateToString pattern:"yyyy"
	//nxdate:dateToString targetPattern:"yyyy"
	At time.Time

	Timeout time.Duration
}
`

	res, err := NewAnalyzer("_nxdate.go").LoadSource("p.go", []byte(src))
	require.NoError(t, err)

	require.Len(t, res.Declarations, 1)
	event := res.Declarations[0]
	assert.Equal(t, "Event", event.Name())
	assert.Equal(t, "p.go", event.SourceFile)

	at := findField(t, event, "At")
	require.Len(t, at.Directives, 1, "the malformed directive is dropped")
	assert.Equal(t, directive.DateToText{TargetPattern: "yyyy"}, at.Directives[0])

	timeout := findField(t, event, "Timeout")
	assert.Equal(t, "time.Duration", timeout.Type.Name)
	assert.Empty(t, timeout.Type.Underlying, "foreign named types are not basic carriers")

	codes := map[string]int{}
	for _, e := range res.Diagnostics.Errors {
		codes[e.Code]++
	}

	assert.Equal(t, 3, codes[diagnostic.CodeUnsupportedDeclaration])
	assert.Equal(t, 1, codes[diagnostic.CodeMalformedDirective])
}

func TestAnalyzer_LoadSource_EmbeddedAndMultiName(t *testing.T) {
	src := `package p

type Base struct{}

//nxdate:extension
type Row struct {
	Base

	//nxdate:stringToDate originPattern:"yyyy"
	From, To string
}
`

	res, err := NewAnalyzer("_nxdate.go").LoadSource("row.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, res.Declarations, 1)

	fields := res.Declarations[0].Fields
	require.Len(t, fields, 3)

	assert.Equal(t, "Base", fields[0].Name)
	assert.True(t, fields[0].Embedded)
	assert.Equal(t, "p.Base", fields[0].Type.Name)

	assert.Equal(t, "From", fields[1].Name)
	assert.Equal(t, "To", fields[2].Name)
	assert.Len(t, fields[2].Directives, 1)
}

func TestAnalyzer_LoadSource_TypeError(t *testing.T) {
	_, err := NewAnalyzer("_nxdate.go").LoadSource("bad.go", []byte("package p\n\nvar x int = \"s\"\n"))
	require.Error(t, err)
}

func TestErrorFile(t *testing.T) {
	assert.Equal(t, "/a/b_nxdate.go", errorFile("/a/b_nxdate.go:12:3"))
	assert.Equal(t, `C:\a\b.go`, errorFile(`C:\a\b.go:1:2`))
	assert.Empty(t, errorFile("-"))
}
