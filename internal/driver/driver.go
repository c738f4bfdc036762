package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"nxdate-generator/internal/analyze"
	"nxdate-generator/internal/classify"
	"nxdate-generator/internal/config"
	"nxdate-generator/internal/diagnostic"
	"nxdate-generator/internal/gen"
	"nxdate-generator/internal/plan"
)

// Driver wires the Classifier, Planner and Emitter together.
type Driver struct {
	cfg     config.Config
	logger  *slog.Logger
	planner *plan.Planner
	emitter *gen.Emitter
}

// Unit is the outcome for one declaration.
type Unit struct {
	Declaration *analyze.Declaration
	// Accessors are the accessors that made it into File.
	Accessors []plan.Accessor
	// File is nil when emission failed or the unit was a duplicate.
	File *gen.GeneratedFile
}

// Result is the outcome of one pass.
type Result struct {
	// Units hold one entry per declaration, in input order.
	Units []Unit
	// Dirs are the package directories the pass looked at, sorted.
	Dirs []string
	// Diagnostics collects every failure of the pass.
	Diagnostics diagnostic.Diagnostics
	// Deferred lists declarations needing another pass. Generation is single
	// pass, so it is always empty.
	Deferred []*analyze.Declaration
}

// Files returns the generated files of the pass in declaration order.
func (r *Result) Files() []gen.GeneratedFile {
	files := make([]gen.GeneratedFile, 0, len(r.Units))
	for _, u := range r.Units {
		if u.File != nil {
			files = append(files, *u.File)
		}
	}

	return files
}

// New creates a Driver. A nil logger discards log output.
func New(cfg config.Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Driver{
		cfg:     cfg,
		logger:  logger,
		planner: plan.NewPlanner(cfg),
		emitter: gen.NewEmitter(cfg),
	}
}

// Generate loads the packages matching patterns and runs a pass over every
// marked declaration found in them. Analyzer diagnostics come first in the
// result.
func (d *Driver) Generate(ctx context.Context, patterns ...string) (*Result, error) {
	loaded, err := analyze.NewAnalyzer(d.cfg.Suffix).LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	res, err := d.Run(ctx, loaded.Declarations)
	if err != nil {
		return nil, err
	}

	diags := loaded.Diagnostics
	diags.Merge(res.Diagnostics)
	res.Diagnostics = diags

	for _, dir := range loaded.Packages {
		if dir != "" {
			res.Dirs = append(res.Dirs, dir)
		}
	}

	slices.Sort(res.Dirs)
	res.Dirs = slices.Compact(res.Dirs)

	return res, nil
}

// Run processes decls. Declarations are handled concurrently up to the
// configured job count and merged back in input order. The only error
// returned is the cancellation of ctx.
func (d *Driver) Run(ctx context.Context, decls []*analyze.Declaration) (*Result, error) {
	res := &Result{}

	names := make([]string, 0, len(decls))
	for _, decl := range decls {
		names = append(names, decl.ID.String())
	}

	d.logger.Info("processing declarations", slog.Any("declarations", names))
	res.Diagnostics.AddInfo(diagnostic.CodeProcessing,
		"processing declarations: "+strings.Join(names, ", "), "", "", "")

	outcomes := make([]outcome, len(decls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs(len(decls)))

	for i, decl := range decls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcomes[i] = d.process(decl)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generation cancelled: %w", err)
	}

	seen := make(map[string]string, len(outcomes))

	for _, o := range outcomes {
		res.Diagnostics.Merge(o.diags)

		if o.unit.File != nil {
			path := o.unit.File.Path()
			if prev, ok := seen[path]; ok {
				res.Diagnostics.AddError(diagnostic.CodeDuplicateUnit,
					fmt.Sprintf("unit %s is already generated for %s", o.unit.File.Filename, prev),
					o.unit.Declaration.ID.String(), "", diagnostic.Pos(o.unit.Declaration.Pos))

				o.unit.File = nil
				o.unit.Accessors = nil
			} else {
				seen[path] = o.unit.Declaration.ID.String()
			}
		}

		res.Units = append(res.Units, o.unit)
	}

	return res, nil
}

func (d *Driver) jobs(n int) int {
	jobs := d.cfg.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	if jobs > runtime.GOMAXPROCS(0)*4 {
		jobs = runtime.GOMAXPROCS(0) * 4
	}

	return max(1, min(jobs, n))
}

type outcome struct {
	unit  Unit
	diags diagnostic.Diagnostics
}

// process handles a single declaration. A failing field only removes its
// own accessors.
func (d *Driver) process(decl *analyze.Declaration) outcome {
	o := outcome{unit: Unit{Declaration: decl}}
	id := decl.ID.String()

	var fields []*classify.Classified

	for _, f := range decl.Fields {
		if f.Ignored {
			d.logger.Debug("skipping ignored field", slog.String("declaration", id), slog.String("field", f.Name))
			continue
		}

		c, err := classify.Classify(decl, f)
		if err != nil {
			o.diags.AddError(errorCode(err), err.Error(), id, f.Name, diagnostic.Pos(f.Pos))
			d.logger.Debug("field skipped", slog.String("declaration", id), slog.String("field", f.Name),
				slog.String("error", err.Error()))

			continue
		}

		fields = append(fields, c)
	}

	accessors, diags := d.planner.PlanDeclaration(decl, fields)
	o.diags.Merge(diags)

	file, err := d.emitter.Emit(decl, accessors)
	if err != nil {
		o.diags.AddError(diagnostic.CodeEmitFailed, err.Error(), id, "", diagnostic.Pos(decl.Pos))
		return o
	}

	o.unit.File = file
	o.unit.Accessors = accessors

	d.logger.Debug("unit emitted", slog.String("declaration", id),
		slog.String("file", file.Filename), slog.Int("accessors", len(accessors)))

	return o
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, classify.ErrUnsupportedType):
		return diagnostic.CodeUnsupportedType
	case errors.Is(err, classify.ErrMissingDirective):
		return diagnostic.CodeMissingDirective
	default:
		return diagnostic.CodeProcessing
	}
}
