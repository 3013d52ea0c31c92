package parser

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Origin identifies the document a token or diagnostic came from.
// The zero value is the root document; a non-empty Path names an included
// fragment.
type Origin struct {
	Path string
}

// IsRoot reports whether o is the root document.
func (o Origin) IsRoot() bool { return o.Path == "" }

func (o Origin) String() string {
	if o.IsRoot() {
		return "root"
	}

	return "include(" + o.Path + ")"
}

// ErrorKind classifies a fatal parse failure.
type ErrorKind int

const (
	// KindEndOfStream means the input ended inside an element.
	KindEndOfStream ErrorKind = iota
	// KindUnexpectedToken means a token appeared where the grammar forbids it.
	KindUnexpectedToken
	// KindUnexpectedElement means an element is not a legal child of its parent.
	KindUnexpectedElement
	// KindInvalidFormat means the markup itself is malformed.
	KindInvalidFormat
	// KindMissingAttribute means a required attribute is absent or empty.
	KindMissingAttribute
	// KindIncludeLoader means the include loader failed to resolve a fragment.
	KindIncludeLoader
	// KindMaxDepthExceeded means includes nested deeper than the configured limit.
	KindMaxDepthExceeded
	// KindCanceled means the context was done before an include was resolved.
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindEndOfStream:
		return "unexpected end of stream"
	case KindUnexpectedToken:
		return "unexpected token"
	case KindUnexpectedElement:
		return "unexpected element"
	case KindInvalidFormat:
		return "invalid format"
	case KindMissingAttribute:
		return "missing attribute"
	case KindIncludeLoader:
		return "unable to load include"
	case KindMaxDepthExceeded:
		return "maximum include depth exceeded"
	case KindCanceled:
		return "parse canceled"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel errors, matched by kind with errors.Is.
var (
	ErrEndOfStream       = &Error{Kind: KindEndOfStream}
	ErrUnexpectedToken   = &Error{Kind: KindUnexpectedToken}
	ErrUnexpectedElement = &Error{Kind: KindUnexpectedElement}
	ErrInvalidFormat     = &Error{Kind: KindInvalidFormat}
	ErrMissingAttribute  = &Error{Kind: KindMissingAttribute}
	ErrIncludeLoader     = &Error{Kind: KindIncludeLoader}
	ErrMaxDepthExceeded  = &Error{Kind: KindMaxDepthExceeded}
	ErrCanceled          = &Error{Kind: KindCanceled}
)

// Error is a terminal parse failure. It always carries the origin and span
// of the offending input.
type Error struct {
	Kind   ErrorKind
	Origin Origin
	Span   Span

	// Name is the offending element or attribute name, if any.
	Name string
	// Expected lists the names that would have been accepted, if known.
	Expected []string
	Detail   string
	Cause    error
}

// NewError returns an error of the same kind as base, located at span in
// origin. The With methods fill in the remaining fields.
func NewError(base *Error, origin Origin, span Span) *Error {
	return &Error{Kind: base.Kind, Origin: origin, Span: span}
}

// WithDetail records a human-readable description of the failure.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail

	return e
}

// WithName records the offending name and the names that were expected.
func (e *Error) WithName(name string, expected ...string) *Error {
	e.Name = name
	e.Expected = expected

	return e
}

// WithCause records the underlying error returned by Unwrap.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err

	return e
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.String())

	if e.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(e.Name))
	}

	sb.WriteString(" in ")
	sb.WriteString(e.Origin.String())
	sb.WriteString(" at ")
	sb.WriteString(e.Span.String())

	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying cause, e.g. an include loader failure.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.String("origin", e.Origin.String()),
		slog.Int("start", e.Span.Start),
		slog.Int("end", e.Span.End),
	}

	if e.Name != "" {
		attrs = append(attrs, slog.String("name", e.Name))
	}

	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}

	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

// WarningKind classifies a recoverable anomaly.
type WarningKind int

const (
	// WarningUnexpectedAttribute is an attribute name the element does not
	// recognise. The attribute is dropped.
	WarningUnexpectedAttribute WarningKind = iota
	// WarningDuplicateElement is a second occurrence of a single-instance
	// child. The later occurrence replaces the earlier one.
	WarningDuplicateElement
)

func (k WarningKind) String() string {
	switch k {
	case WarningUnexpectedAttribute:
		return "unexpected attribute"
	case WarningDuplicateElement:
		return "duplicate element"
	default:
		return "WarningKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Warning is a non-fatal diagnostic recorded during parsing.
type Warning struct {
	Kind     WarningKind
	Origin   Origin
	Span     Span
	Name     string
	Expected []string
}

// WarningOption decorates a [Warning] recorded with [Cursor.AddWarning].
type WarningOption func(*Warning)

// WarnName records the offending name and the names that were expected.
func WarnName(name string, expected ...string) WarningOption {
	return func(w *Warning) {
		w.Name = name
		w.Expected = expected
	}
}

func (w Warning) String() string {
	var sb strings.Builder

	sb.WriteString(w.Kind.String())

	if w.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(w.Name))
	}

	sb.WriteString(" in ")
	sb.WriteString(w.Origin.String())
	sb.WriteString(" at ")
	sb.WriteString(w.Span.String())

	return sb.String()
}

// LogValue implements slog.LogValuer.
func (w Warning) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", w.Kind.String()),
		slog.String("origin", w.Origin.String()),
		slog.Int("start", w.Span.Start),
		slog.Int("end", w.Span.End),
	}

	if w.Name != "" {
		attrs = append(attrs, slog.String("name", w.Name))
	}

	return slog.GroupValue(attrs...)
}

// Locate converts a byte offset in src to a one-based line and column.
// Columns count runes.
func Locate(src string, offset int) (line, col int) {
	offset = min(max(offset, 0), len(src))
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return line, utf8.RuneCountInString(before[lineStart:]) + 1
}

// Snippet renders the source line containing span.Start with a caret
// marker underneath the spanned text, for example:
//
//	  1 | <mjml>Hello</mjml>
//	            ^^^^^
func Snippet(src string, span Span) string {
	line, col := Locate(src, span.Start)
	lines := strings.Split(src, "\n")

	if line > len(lines) {
		return ""
	}

	text := lines[line-1]
	num := strconv.Itoa(line)

	// Underline at least one column, and never past the end of the line.
	width := utf8.RuneCountInString(src[min(span.Start, len(src)):min(span.End, len(src))])
	if rest := utf8.RuneCountInString(text) - col + 1; width > rest {
		width = rest
	}

	width = max(width, 1)

	var sb strings.Builder

	sb.WriteString("  ")
	sb.WriteString(num)
	sb.WriteString(" | ")
	sb.WriteString(text)
	sb.WriteByte('\n')
	// +5 accounts for 2 leading spaces and " | "
	sb.WriteString(strings.Repeat(" ", len(num)+5+col-1))
	sb.WriteString(strings.Repeat("^", width))
	sb.WriteByte('\n')

	return sb.String()
}
