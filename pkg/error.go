package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors shared by the command and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.
var (
	// ErrReadInput is returned when reading a document or fragment fails.
	// It should wrap the underlying I/O error.
	ErrReadInput = NewError("failed to read input")
	// ErrParse is returned when a document fails to parse.
	// It should wrap the *parser.Error describing the failure.
	ErrParse = NewError("parse error")
	// ErrInvalidFormat is returned when an unknown output format is requested.
	ErrInvalidFormat = NewError("invalid format")
	// ErrJSONMarshal is returned when JSON encoding of a report fails.
	ErrJSONMarshal = NewError("JSON marshal error")
	// ErrYAMLMarshal is returned when YAML encoding of a report fails.
	ErrYAMLMarshal = NewError("YAML marshal error")
	// ErrYAMLUnmarshal is returned when decoding YAML input fails.
	ErrYAMLUnmarshal = NewError("YAML unmarshal error")
)

// Error is an error message with an optional wrapped cause and structured
// logging attributes. It implements both error and slog.LogValuer.
//
// Errors are immutable: [Error.Wrap] and [Error.With] return new values that
// still match the receiver with errors.Is.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	base  *Error      // Sentinel this error was derived from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
// An error that already is (or wraps) an *Error is returned as that *Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Attrs returns the structured logging attributes attached to e.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		base:  e.root(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.root(),
	}
}
