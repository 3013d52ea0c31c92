package parser

import (
	"context"

	"github.com/ardnew/mjml/log"
)

// IncludeLoader resolves the name of an included fragment to its text.
// It is used by the synchronous entry points and must not block
// indefinitely.
type IncludeLoader interface {
	Load(name string) (string, error)
}

// AsyncIncludeLoader resolves the name of an included fragment to its text,
// honoring cancellation of ctx.
type AsyncIncludeLoader interface {
	LoadContext(ctx context.Context, name string) (string, error)
}

// DefaultMaxIncludeDepth bounds the nesting of included fragments.
const DefaultMaxIncludeDepth = 16

// Options configures a synchronous parse.
type Options struct {
	// IncludeLoader resolves mj-include paths. A nil loader makes every
	// include fail with [ErrIncludeLoader].
	IncludeLoader IncludeLoader
	// Logger receives trace and debug events. The zero Logger discards them.
	Logger log.Logger
	// MaxIncludeDepth bounds nested includes; zero or negative selects
	// [DefaultMaxIncludeDepth].
	MaxIncludeDepth int
}

// DefaultOptions returns the options used by the plain parse entry points.
func DefaultOptions() Options {
	return Options{MaxIncludeDepth: DefaultMaxIncludeDepth}
}

// AsyncOptions configures a context-aware parse.
type AsyncOptions struct {
	IncludeLoader   AsyncIncludeLoader
	Logger          log.Logger
	MaxIncludeDepth int
}

// DefaultAsyncOptions returns the options used by the plain context-aware
// parse entry points.
func DefaultAsyncOptions() AsyncOptions {
	return AsyncOptions{MaxIncludeDepth: DefaultMaxIncludeDepth}
}

// Output pairs a parsed root element with the warnings recorded while
// parsing it, in encounter order.
type Output[T any] struct {
	Element  T
	Warnings []Warning
}
