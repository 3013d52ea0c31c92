package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filter selects the diagnostics to report with a boolean expr-lang
// program, for example:
//
//	severity == "error" || kind == "unexpected attribute" && name != "mj-class"
//
// The program sees the variables severity, kind, origin, start, end, name
// and file. An empty filter keeps everything.
type filter struct {
	source  string
	program *vm.Program
}

func filterEnv(file string, d Diagnostic) map[string]any {
	return map[string]any{
		"severity": d.Severity,
		"kind":     d.Kind,
		"origin":   d.Origin,
		"start":    d.Start,
		"end":      d.End,
		"name":     d.Name,
		"file":     file,
	}
}

func compileFilter(source string) (filter, error) {
	if source == "" {
		return filter{}, nil
	}

	program, err := expr.Compile(source,
		expr.Env(filterEnv("", Diagnostic{})),
		expr.AsBool(),
	)
	if err != nil {
		return filter{}, ErrFilter.Wrap(err).With(slog.String("filter", source))
	}

	return filter{source: source, program: program}, nil
}

// keep reports whether d passes the filter.
func (f filter) keep(file string, d Diagnostic) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(file, d))
	if err != nil {
		return false, ErrFilter.Wrap(err).With(slog.String("filter", f.source))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// apply returns rep with only the diagnostics that pass the filter, and its
// counts recomputed.
func (f filter) apply(rep Report) (Report, error) {
	if f.program == nil {
		return rep, nil
	}

	out := Report{File: rep.File}

	for _, d := range rep.Diagnostics {
		ok, err := f.keep(rep.File, d)
		if err != nil {
			return Report{}, err
		}

		if ok {
			out.add(d)
		}
	}

	return out, nil
}
