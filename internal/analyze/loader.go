package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/directive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects marked declarations.
type Analyzer struct {
	// generatedSuffix identifies files written by a previous pass.
	generatedSuffix string
}

// NewAnalyzer creates a new Analyzer. Files ending in generatedSuffix are
// treated as output of an earlier pass.
func NewAnalyzer(generatedSuffix string) *Analyzer {
	return &Analyzer{generatedSuffix: generatedSuffix}
}

// LoadPackages loads the specified packages and collects their marked declarations.
// Patterns are standard Go package patterns (e.g., "./models", "example.com/app/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Errors inside stale generated units are expected and must not block
	// regeneration.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if a.isGenerated(errorFile(e.Pos)) {
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].PkgPath < pkgs[j].PkgPath
	})

	res := newResult()
	for _, pkg := range pkgs {
		if err := a.processPackage(res, pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return res, nil
}

// LoadSource type-checks a single in-memory file and collects its marked
// declarations. Imports are resolved from source.
func (a *Analyzer) LoadSource(filename string, src []byte) (*Result, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	info := newTypesInfo()
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}

	pkg, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	if err != nil {
		return nil, fmt.Errorf("failed to type-check %s: %w", filename, err)
	}

	res := newResult()
	res.Packages[pkg.Path()] = ""

	unit := fileUnit{
		fset:    fset,
		file:    file,
		info:    info,
		pkgPath: pkg.Path(),
		pkgName: pkg.Name(),
		hash:    hashBytes(src),
	}
	a.processFile(res, unit)

	return res, nil
}

func newResult() *Result {
	return &Result{Packages: make(map[string]string)}
}

func newTypesInfo() *types.Info {
	return &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
}

// fileUnit bundles everything needed to scan one syntax tree.
type fileUnit struct {
	fset    *token.FileSet
	file    *ast.File
	info    *types.Info
	pkgPath string
	pkgName string
	dir     string
	hash    string
}

// processPackage scans every non-generated file of a loaded package.
func (a *Analyzer) processPackage(res *Result, pkg *packages.Package) error {
	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}

	res.Packages[pkg.PkgPath] = dir

	if pkg.TypesInfo == nil {
		return nil
	}

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Pos()).Filename
		if a.isGenerated(filename) {
			continue
		}

		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		a.processFile(res, fileUnit{
			fset:    pkg.Fset,
			file:    file,
			info:    pkg.TypesInfo,
			pkgPath: pkg.PkgPath,
			pkgName: pkg.Name,
			dir:     dir,
			hash:    hashBytes(content),
		})
	}

	return nil
}

// processFile collects the marked struct declarations of one file.
func (a *Analyzer) processFile(res *Result, u fileUnit) {
	for _, decl := range u.file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			if !hasMarker(doc) {
				continue
			}

			if d := a.analyzeTypeSpec(res, u, ts); d != nil {
				res.Declarations = append(res.Declarations, d)
			}
		}
	}
}

// analyzeTypeSpec builds the Declaration for a marked type, or reports why it
// cannot carry generated accessors.
func (a *Analyzer) analyzeTypeSpec(res *Result, u fileUnit, ts *ast.TypeSpec) *Declaration {
	id := TypeID{PkgPath: u.pkgPath, Name: ts.Name.Name}
	pos := u.fset.Position(ts.Name.Pos())

	st, isStruct := ts.Type.(*ast.StructType)

	switch {
	case ts.Assign.IsValid():
		res.Diagnostics.AddError(diagnostic.CodeUnsupportedDeclaration,
			"type aliases cannot carry generated accessors", id.String(), "", pos.String())
		return nil
	case ts.TypeParams != nil && len(ts.TypeParams.List) > 0:
		res.Diagnostics.AddError(diagnostic.CodeUnsupportedDeclaration,
			"generic types are not supported", id.String(), "", pos.String())
		return nil
	case !isStruct:
		res.Diagnostics.AddError(diagnostic.CodeUnsupportedDeclaration,
			"marked type is not a struct", id.String(), "", pos.String())
		return nil
	}

	d := &Declaration{
		ID:         id,
		PkgName:    u.pkgName,
		Dir:        u.dir,
		SourceFile: filepath.Base(pos.Filename),
		SourceHash: u.hash,
		Pos:        pos,
	}

	for _, f := range st.Fields.List {
		d.Fields = append(d.Fields, a.analyzeField(res, u, id, f)...)
	}

	for _, f := range d.Fields {
		d.Members = append(d.Members, f.Name)
	}

	d.Members = append(d.Members, a.declaredMethods(u, ts.Name)...)

	return d
}

// analyzeField expands one AST field (which may declare several names).
func (a *Analyzer) analyzeField(res *Result, u fileUnit, id TypeID, f *ast.Field) []Field {
	var (
		directives []directive.Directive
		ignored    bool
		malformed  []*ast.Comment
		reasons    []error
	)

	if f.Doc != nil {
		for _, c := range f.Doc.List {
			payload, ok := directive.Comment(c.Text)
			if !ok || directive.IsMarker(payload) {
				continue
			}

			if directive.IsIgnore(payload) {
				ignored = true
				continue
			}

			d, err := directive.Parse(payload)
			if err != nil {
				malformed = append(malformed, c)
				reasons = append(reasons, err)

				continue
			}

			directives = append(directives, d)
		}
	}

	ft := a.describeType(u, u.info.TypeOf(f.Type))

	var fields []Field

	if len(f.Names) == 0 {
		fields = append(fields, Field{
			Name:       embeddedName(f.Type),
			Type:       ft,
			Directives: directives,
			Ignored:    ignored,
			Embedded:   true,
			Pos:        u.fset.Position(f.Type.Pos()),
		})
	}

	for _, name := range f.Names {
		fields = append(fields, Field{
			Name:       name.Name,
			Type:       ft,
			Directives: directives,
			Ignored:    ignored,
			Pos:        u.fset.Position(name.Pos()),
		})
	}

	for i, c := range malformed {
		for _, field := range fields {
			res.Diagnostics.AddError(diagnostic.CodeMalformedDirective, reasons[i].Error(),
				id.String(), field.Name, u.fset.Position(c.Pos()).String())
		}
	}

	return fields
}

// describeType captures the identity of a field type. Underlying is only
// recorded for defined basic types of the declaring package, so conversions
// like time.Duration are never mistaken for a timestamp carrier.
func (a *Analyzer) describeType(u fileUnit, t types.Type) FieldType {
	if t == nil {
		return FieldType{Name: "invalid type"}
	}

	t = types.Unalias(t)
	ft := FieldType{Name: types.TypeString(t, nil)}

	switch tt := t.(type) {
	case *types.Basic:
		ft.Underlying = tt.Name()
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil || obj.Pkg().Path() != u.pkgPath {
			break
		}

		if b, ok := tt.Underlying().(*types.Basic); ok {
			ft.Underlying = b.Name()
		}
	}

	return ft
}

// declaredMethods lists the methods of the named type, skipping methods that
// live in generated units.
func (a *Analyzer) declaredMethods(u fileUnit, ident *ast.Ident) []string {
	obj, ok := u.info.Defs[ident].(*types.TypeName)
	if !ok {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil
	}

	var names []string

	for i := range named.NumMethods() {
		m := named.Method(i)
		if a.isGenerated(u.fset.Position(m.Pos()).Filename) {
			continue
		}

		names = append(names, m.Name())
	}

	sort.Strings(names)

	return names
}

func (a *Analyzer) isGenerated(filename string) bool {
	return a.generatedSuffix != "" && strings.HasSuffix(filename, a.generatedSuffix)
}

// hasMarker reports whether a doc comment carries //nxdate:extension.
func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if payload, ok := directive.Comment(c.Text); ok && directive.IsMarker(payload) {
			return true
		}
	}

	return false
}

// embeddedName returns the implicit field name of an embedded field type.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	default:
		return ""
	}
}

// errorFile extracts the filename of a packages.Error position ("file:line:col").
func errorFile(pos string) string {
	if pos == "" || pos == "-" {
		return ""
	}

	parts := strings.Split(pos, ":")
	if len(parts) >= 3 {
		return strings.Join(parts[:len(parts)-2], ":")
	}

	return parts[0]
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
