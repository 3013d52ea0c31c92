package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/mjml/loader"
	"github.com/ardnew/mjml/log"
	"github.com/ardnew/mjml/mjml"
	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

// Check parses MJML documents and reports their errors and warnings.
type Check struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Report format (${enum})." short:"f"`
	Filter string `help:"Report only diagnostics for which this expression is true." placeholder:"EXPR"`
	Strict bool   `help:"Fail when any warning is reported." negatable:""`
	Jobs   int    `default:"${jobs}" help:"Number of documents checked concurrently." short:"j"`

	IncludeDir      []string      `help:"Directory searched for mj-include paths (repeatable)."        placeholder:"DIR"  short:"I" type:"path"`
	IncludeBundle   []string      `help:"YAML file mapping include paths to fragments (repeatable)."  placeholder:"FILE"           type:"existingfile"`
	MaxIncludeDepth int           `default:"${maxIncludeDepth}" help:"Maximum mj-include nesting depth."`
	Timeout         time.Duration `default:"0" help:"Abort after this long (0 waits forever)."`

	Files []string `arg:"" default:"-" help:"Documents to check, or '-' for stdin." name:"file"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	flt, err := compileFilter(c.Filter)
	if err != nil {
		return err
	}

	out := outputFrom(ctx)

	rep, err := newReporter(c.Format, out)
	if err != nil {
		return err
	}

	includes, err := c.loader()
	if err != nil {
		return err
	}

	opts := parser.AsyncOptions{
		IncludeLoader:   includes,
		Logger:          log.Default(),
		MaxIncludeDepth: c.MaxIncludeDepth,
	}

	sources := Sources(ctx, c.Files)
	reports := make([]Report, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Jobs, 1))

	for i, src := range sources {
		g.Go(func() error {
			r, err := checkSource(gctx, src, opts, includes)
			if err != nil {
				return err
			}

			reports[i], err = flt.apply(r)

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := rep.write(out, reports); err != nil {
		return ErrWriteReport.Wrap(err)
	}

	var errs, warns int
	for _, r := range reports {
		errs += r.Errors
		warns += r.Warnings
	}

	if errs > 0 || (c.Strict && warns > 0) {
		return ErrCheckFailed.With(
			slog.Int("files", len(reports)),
			slog.Int("errors", errs),
			slog.Int("warnings", warns),
		)
	}

	return nil
}

// loader composes the include loader: bundles first, then the include
// search path, behind a shared cache so that every document checked in this
// run reads each fragment at most once.
func (c *Check) loader() (*loader.Cached, error) {
	var chain loader.Chain

	for _, path := range c.IncludeBundle {
		f, err := os.Open(path)
		if err != nil {
			return nil, pkg.ErrReadInput.Wrap(err).With(slog.String("bundle", path))
		}

		m, err := loader.ReadYAML(f)
		_ = f.Close()

		if err != nil {
			return nil, err
		}

		chain = append(chain, m)
	}

	if dirs := loader.SearchPath(c.IncludeDir...); len(dirs) > 0 {
		chain = append(chain, loader.NewLocal(dirs...).WithLogger(log.Default()))
	}

	return loader.NewCached(chain), nil
}

// checkSource parses one document. Parse and read failures become
// diagnostics; only cancellation of ctx is returned as an error.
func checkSource(
	ctx context.Context,
	src Source,
	opts parser.AsyncOptions,
	includes loader.Loader,
) (Report, error) {
	rep := Report{File: src.Name}

	text, err := src.Read()
	if err != nil {
		rep.add(errorDiagnostic(err))

		return rep, nil //nolint:nilerr
	}

	begin := time.Now()
	doc, err := mjml.ParseContextWithOptions(ctx, text, opts)

	log.DebugContext(ctx, "checked",
		slog.String("file", src.Name),
		slog.Duration("took", time.Since(begin)),
		slog.Int("warnings", len(doc.Warnings)),
		slog.Bool("ok", err == nil),
	)

	if cerr := ctx.Err(); cerr != nil {
		return Report{}, cerr
	}

	source := func(o parser.Origin) (string, bool) {
		if o.IsRoot() {
			return text, true
		}

		t, err := includes.LoadContext(ctx, o.Path)

		return t, err == nil
	}

	for _, w := range doc.Warnings {
		d := warningDiagnostic(w)
		d.locate(source)
		rep.add(d)
	}

	if err != nil {
		d := errorDiagnostic(err)
		d.locate(source)
		rep.add(d)
	}

	return rep, nil
}
