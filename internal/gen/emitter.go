package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mod/module"

	"nxdate-generator/internal/analyze"
	"nxdate-generator/internal/common"
	"nxdate-generator/internal/config"
	"nxdate-generator/internal/plan"
)

// GeneratedHeader is the first line of every generated unit.
const GeneratedHeader = "// Code generated by nxdate-generator. DO NOT EDIT."

// sourceDigestLen is the number of hex digits of the source digest kept in the header.
const sourceDigestLen = 16

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs in (empty for in-memory sources).
	Dir string
	// Filename is the name of the file (e.g., "datetest_nxdate.go").
	Filename string
	// Declaration is the qualified name of the originating declaration.
	Declaration string
	// Source is the file name of the originating declaration.
	Source string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full output path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Emitter renders planned accessors into generated units.
type Emitter struct {
	suffix    string
	helper    importSpec
	qualifier string
	// helperErr is set when the helper import path is not a valid import path.
	helperErr error
}

// NewEmitter creates an Emitter with the output settings of cfg.
func NewEmitter(cfg config.Config) *Emitter {
	e := &Emitter{
		suffix: cfg.Suffix,
		helper: importSpec{Path: cfg.HelperImport},
	}

	if err := module.CheckImportPath(cfg.HelperImport); err != nil {
		e.helperErr = fmt.Errorf("invalid helper import: %w", err)
		return e
	}

	// The package name is not known without loading the helper, so alias it
	// whenever the last path element is not the conventional name.
	e.qualifier = common.PkgAlias(cfg.HelperImport)
	if !token.IsIdentifier(e.qualifier) {
		e.qualifier = "datefmt"
	}

	if e.qualifier != path.Base(cfg.HelperImport) {
		e.helper.Alias = e.qualifier
	}

	return e
}

// Filename returns the deterministic unit file name for decl.
func (e *Emitter) Filename(decl *analyze.Declaration) string {
	return strings.ToLower(decl.Name()) + e.suffix
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// unitData holds all data needed for the unit template.
type unitData struct {
	Header      string
	PackageName string
	Source      string
	SourceHash  string
	StdImports  []importSpec
	Imports     []importSpec
	Receiver    string
	TypeName    string
	Accessors   []accessorData
}

// accessorData is one rendered accessor.
type accessorData struct {
	Name       string
	Doc        string
	ReturnType string
	Body       string
}

// Emit renders the unit for decl holding accessors, in the order given.
// A declaration without accessors still gets a unit so that stale accessors
// from an earlier pass disappear.
func (e *Emitter) Emit(decl *analyze.Declaration, accessors []plan.Accessor) (*GeneratedFile, error) {
	if e.helperErr != nil && len(accessors) > 0 {
		return nil, e.helperErr
	}

	data := e.buildUnitData(decl, accessors)

	file := &GeneratedFile{
		Dir:         decl.Dir,
		Filename:    e.Filename(decl),
		Declaration: decl.ID.String(),
		Source:      decl.SourceFile,
	}

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if decl.Dir != "" {
			_ = writeDebugUnformatted(decl.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

func (e *Emitter) buildUnitData(decl *analyze.Declaration, accessors []plan.Accessor) *unitData {
	data := &unitData{
		Header:      GeneratedHeader,
		PackageName: decl.PkgName,
		Source:      decl.SourceFile,
		SourceHash:  shortDigest(decl.SourceHash),
		Receiver:    receiverName(decl.Name()),
		TypeName:    decl.Name(),
	}

	needsTime := false

	for _, a := range accessors {
		if a.Result.Kind == plan.ResultDate {
			needsTime = true
		}

		data.Accessors = append(data.Accessors, accessorData{
			Name:       a.Name,
			Doc:        a.Doc,
			ReturnType: a.Result.GoType(),
			Body:       e.renderExpr(data.Receiver, a.Expr),
		})
	}

	if needsTime {
		data.StdImports = append(data.StdImports, importSpec{Path: "time"})
	}

	if len(accessors) > 0 {
		data.Imports = append(data.Imports, e.helper)
	}

	return data
}

// renderExpr renders a helper call, e.g.
// datefmt.ChangeFormat(d.DateOne, "yyyy-MM-dd", "yyyy MMM dd").
func (e *Emitter) renderExpr(receiver string, expr plan.Expr) string {
	args := make([]string, 0, len(expr.Args))

	for _, arg := range expr.Args {
		if !arg.IsField() {
			args = append(args, strconv.Quote(arg.Literal))
			continue
		}

		value := receiver + "." + arg.Field
		if arg.Conversion != "" {
			value = arg.Conversion + "(" + value + ")"
		}

		args = append(args, value)
	}

	return e.qualifier + "." + expr.Helper + "(" + strings.Join(args, ", ") + ")"
}

// receiverName follows the usual Go convention of a one-letter receiver.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if unicode.IsLetter(r) {
		return string(unicode.ToLower(r))
	}

	return "v"
}

func shortDigest(hash string) string {
	if len(hash) > sourceDigestLen {
		return hash[:sourceDigestLen]
	}

	return hash
}

var unitTemplate = template.Must(template.New("unit").Parse(`{{.Header}}
// Source: {{.Source}}{{if .SourceHash}} (sha256:{{.SourceHash}}){{end}}

package {{.PackageName}}
{{if or .StdImports .Imports}}
import (
{{- range .StdImports}}
	"{{.Path}}"
{{- end}}
{{- if and .StdImports .Imports}}
{{end}}
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- range .Accessors}}
// {{.Name}} {{.Doc}}.
func ({{$.Receiver}} {{$.TypeName}}) {{.Name}}() {{.ReturnType}} {
	return {{.Body}}
}
{{end}}`))
