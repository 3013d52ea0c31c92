package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

// Diagnostic severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Diagnostic is one error or warning found in a document or in a fragment
// it includes.
type Diagnostic struct {
	Severity string   `json:"severity"           yaml:"severity"`
	Kind     string   `json:"kind"               yaml:"kind"`
	Origin   string   `json:"origin"             yaml:"origin"`
	Start    int      `json:"start"              yaml:"start"`
	End      int      `json:"end"                yaml:"end"`
	Line     int      `json:"line,omitempty"     yaml:"line,omitempty"`
	Column   int      `json:"column,omitempty"   yaml:"column,omitempty"`
	Name     string   `json:"name,omitempty"     yaml:"name,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Suggest  string   `json:"suggest,omitempty"  yaml:"suggest,omitempty"`
	Message  string   `json:"message"            yaml:"message"`

	path    string
	snippet string
}

// Report is the result of checking one document.
type Report struct {
	File        string       `json:"file"        yaml:"file"`
	Errors      int          `json:"errors"      yaml:"errors"`
	Warnings    int          `json:"warnings"    yaml:"warnings"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func (r *Report) add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		r.Errors++
	case SeverityWarning:
		r.Warnings++
	}

	r.Diagnostics = append(r.Diagnostics, d)
}

// sourceFunc returns the text of the document or fragment at origin.
type sourceFunc func(parser.Origin) (string, bool)

func warningDiagnostic(w parser.Warning) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Kind:     w.Kind.String(),
		Origin:   w.Origin.String(),
		Start:    w.Span.Start,
		End:      w.Span.End,
		Name:     w.Name,
		Expected: w.Expected,
		Suggest:  suggest(w.Name, w.Expected),
		Message:  w.String(),
		path:     w.Origin.Path,
	}
}

func errorDiagnostic(err error) Diagnostic {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return Diagnostic{
			Severity: SeverityError,
			Kind:     "input",
			Origin:   parser.Origin{}.String(),
			Message:  err.Error(),
		}
	}

	return Diagnostic{
		Severity: SeverityError,
		Kind:     perr.Kind.String(),
		Origin:   perr.Origin.String(),
		Start:    perr.Span.Start,
		End:      perr.Span.End,
		Name:     perr.Name,
		Expected: perr.Expected,
		Suggest:  suggest(perr.Name, perr.Expected),
		Message:  perr.Error(),
		path:     perr.Origin.Path,
	}
}

// locate fills the line, column and snippet of d from its source text.
func (d *Diagnostic) locate(source sourceFunc) {
	if d.Kind == "input" {
		return
	}

	text, ok := source(parser.Origin{Path: d.path})
	if !ok {
		return
	}

	d.Line, d.Column = parser.Locate(text, d.Start)
	d.snippet = parser.Snippet(text, parser.Span{Start: d.Start, End: d.End})
}

// suggest returns the expected name closest to name, or "" if none is a
// plausible match.
func suggest(name string, expected []string) string {
	if name == "" || len(expected) == 0 {
		return ""
	}

	matches := fuzzy.Find(name, expected)
	if len(matches) == 0 {
		// Fuzzy matching needs the pattern's characters in order, which a
		// misspelling rarely keeps. Retry with the candidates as patterns.
		for _, e := range expected {
			if len(fuzzy.Find(e, []string{name})) > 0 {
				return e
			}
		}

		return ""
	}

	return matches[0].Str
}

// reporter writes check results in one output format.
type reporter interface {
	write(w io.Writer, reports []Report) error
}

func newReporter(format string, w io.Writer) (reporter, error) {
	switch format {
	case "", "text":
		return newTextReporter(w), nil
	case "json":
		return jsonReporter{}, nil
	case "yaml":
		return yamlReporter{}, nil
	default:
		return nil, pkg.ErrInvalidFormat.With(slog.String("format", format))
	}
}

type jsonReporter struct{}

func (jsonReporter) write(w io.Writer, reports []Report) error {
	data, err := json.MarshalIndent(nonNil(reports), "", "  ")
	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

type yamlReporter struct{}

func (yamlReporter) write(w io.Writer, reports []Report) error {
	data, err := yaml.MarshalWithOptions(nonNil(reports), yaml.Indent(2))
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

func nonNil(reports []Report) []Report {
	out := make([]Report, len(reports))
	for i, r := range reports {
		if r.Diagnostics == nil {
			r.Diagnostics = []Diagnostic{}
		}

		out[i] = r
	}

	return out
}

type textReporter struct {
	file, ok, err, warn, hint, gutter lipgloss.Style
}

func newTextReporter(w io.Writer) textReporter {
	r := lipgloss.NewRenderer(w)

	return textReporter{
		file:   r.NewStyle().Bold(true),
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")),
		err:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		hint:   r.NewStyle().Foreground(lipgloss.Color("6")),
		gutter: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (t textReporter) write(w io.Writer, reports []Report) error {
	var sb strings.Builder

	for _, rep := range reports {
		sb.WriteString(t.file.Render(rep.File))
		sb.WriteString(": ")

		if rep.Errors == 0 && rep.Warnings == 0 {
			sb.WriteString(t.ok.Render("ok"))
			sb.WriteByte('\n')

			continue
		}

		sb.WriteString(summary(rep.Errors, rep.Warnings))
		sb.WriteByte('\n')

		for _, d := range rep.Diagnostics {
			t.writeDiagnostic(&sb, rep.File, d)
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func (t textReporter) writeDiagnostic(sb *strings.Builder, file string, d Diagnostic) {
	where := file
	if d.path != "" {
		where = d.path
	}

	if d.Line > 0 {
		where += ":" + strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column)
	}

	label := t.warn.Render(d.Severity)
	if d.Severity == SeverityError {
		label = t.err.Render(d.Severity)
	}

	fmt.Fprintf(sb, "  %s: %s: %s\n", where, label, d.Message)

	if d.Suggest != "" && d.Suggest != d.Name {
		sb.WriteString("    ")
		sb.WriteString(t.hint.Render(fmt.Sprintf("did you mean %q?", d.Suggest)))
		sb.WriteByte('\n')
	}

	if d.snippet != "" {
		for line := range strings.SplitSeq(strings.TrimRight(d.snippet, "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(t.gutter.Render(line))
			sb.WriteByte('\n')
		}
	}
}

func summary(errs, warns int) string {
	plural := func(n int, word string) string {
		if n == 1 {
			return "1 " + word
		}

		return strconv.Itoa(n) + " " + word + "s"
	}

	switch {
	case errs > 0 && warns > 0:
		return plural(errs, "error") + ", " + plural(warns, "warning")
	case errs > 0:
		return plural(errs, "error")
	default:
		return plural(warns, "warning")
	}
}
