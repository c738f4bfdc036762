package plan

import (
	"fmt"
	"go/token"

	"nxdate-generator/internal/analyze"
	"nxdate-generator/internal/classify"
	"nxdate-generator/internal/config"
	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/directive"
)

// Planner turns classified fields into accessors.
type Planner struct {
	textInfix     string
	dateInfix     string
	defaultPrefix string
}

// NewPlanner creates a Planner using the naming settings of cfg.
func NewPlanner(cfg config.Config) *Planner {
	return &Planner{
		textInfix:     cfg.TextInfix,
		dateInfix:     cfg.DateInfix,
		defaultPrefix: cfg.DefaultPrefix,
	}
}

// Plan produces one accessor per directive of c. String accessors come
// first, then date accessors, each in source order.
func (p *Planner) Plan(c *classify.Classified) []Accessor {
	multi := c.Families() > 1

	accessors := make([]Accessor, 0, len(c.Text)+len(c.Date))
	for _, d := range c.Text {
		accessors = append(accessors, p.accessor(c, d, multi))
	}

	for _, d := range c.Date {
		accessors = append(accessors, p.accessor(c, d, multi))
	}

	return accessors
}

// PlanDeclaration plans every classified field of decl and drops accessors
// whose names cannot be declared. The remaining accessors are returned in
// field order.
func (p *Planner) PlanDeclaration(
	decl *analyze.Declaration,
	fields []*classify.Classified,
) ([]Accessor, diagnostic.Diagnostics) {
	var (
		diags diagnostic.Diagnostics
		out   []Accessor
	)

	seen := make(map[string]string)

	for _, c := range fields {
		for _, a := range p.Plan(c) {
			pos := diagnostic.Pos(a.Pos)

			switch {
			case !token.IsIdentifier(a.Name):
				diags.AddError(diagnostic.CodeInvalidName,
					fmt.Sprintf("generated name %q is not a valid Go identifier", a.Name),
					decl.ID.String(), a.Field, pos)
			case decl.HasMember(a.Name):
				diags.AddError(diagnostic.CodeNameConflict,
					fmt.Sprintf("generated name %q clashes with an existing field or method", a.Name),
					decl.ID.String(), a.Field, pos)
			case seen[a.Name] != "":
				diags.AddError(diagnostic.CodeDuplicateAccessor,
					fmt.Sprintf("generated name %q is already produced for field %s", a.Name, seen[a.Name]),
					decl.ID.String(), a.Field, pos)
			default:
				seen[a.Name] = a.Field
				out = append(out, a)
			}
		}
	}

	return out, diags
}

// Name returns the generated name for directive d on field. multi is true
// when the field carries directives of more than one family.
func (p *Planner) Name(field string, d directive.Directive, multi bool) string {
	prefix := d.Prefix()
	if prefix == "" {
		prefix = p.defaultPrefix
	}

	if !multi {
		return prefix + field
	}

	switch d.Family() {
	case directive.FamilyDate:
		return prefix + p.dateInfix + field
	default:
		return prefix + p.textInfix + field
	}
}

func (p *Planner) accessor(c *classify.Classified, d directive.Directive, multi bool) Accessor {
	value := Arg{Field: c.Field.Name, Conversion: c.Conversion}

	a := Accessor{
		Name:      p.Name(c.Field.Name, d, multi),
		Field:     c.Field.Name,
		Directive: d,
		Pos:       c.Field.Pos,
	}

	switch v := d.(type) {
	case directive.TextToText:
		a.Result = Result{Kind: ResultText}
		a.Expr = call(HelperChangeFormat, value, lit(v.OriginPattern), lit(v.TargetPattern))
		a.Doc = fmt.Sprintf("reformats %s from %q to %q", c.Field.Name, v.OriginPattern, v.TargetPattern)
	case directive.TextToDate:
		a.Result = Result{Kind: ResultDate, Nullable: true}
		a.Expr = call(HelperParseDate, value, lit(v.OriginPattern))
		a.Doc = fmt.Sprintf("parses %s using %q. It returns nil when %s does not match", c.Field.Name, v.OriginPattern, c.Field.Name)
	case directive.IntegerToText:
		a.Result = Result{Kind: ResultText}
		a.Expr = call(HelperFormatMillis, value, lit(v.TargetPattern))
		a.Doc = fmt.Sprintf("formats the millisecond timestamp %s as %q", c.Field.Name, v.TargetPattern)
	case directive.IntegerToDate:
		a.Result = Result{Kind: ResultDate, Nullable: true}
		a.Expr = call(HelperMillisToDate, value)
		a.Doc = fmt.Sprintf("converts the millisecond timestamp %s to a time. It returns nil when %s is zero", c.Field.Name, c.Field.Name)
	case directive.DateToText:
		a.Result = Result{Kind: ResultText}
		a.Expr = call(HelperFormatDate, value, lit(v.TargetPattern))
		a.Doc = fmt.Sprintf("formats %s as %q", c.Field.Name, v.TargetPattern)
	}

	return a
}

func call(helper string, args ...Arg) Expr {
	return Expr{Helper: helper, Args: args}
}

func lit(s string) Arg {
	return Arg{Literal: s}
}
