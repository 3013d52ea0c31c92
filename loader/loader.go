package loader

import (
	"context"
	"log/slog"

	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

// Sentinel errors returned by the loaders in this package.
var (
	// ErrNotFound is returned when no fragment exists under the requested
	// path.
	ErrNotFound = pkg.NewError("include not found")
	// ErrInvalidPath is returned for an empty or malformed path.
	ErrInvalidPath = pkg.NewError("invalid include path")
	// ErrOutOfScope is returned for a path that would resolve outside the
	// loader's search path, such as an absolute path or one using "..".
	ErrOutOfScope = pkg.NewError("include path outside search path")
	// ErrNoRoute is returned by [Multi] when no route matches a path and no
	// fallback is configured.
	ErrNoRoute = pkg.NewError("no loader for include path")
)

// Loader resolves include paths both synchronously and with a context.
// Every loader in this package implements it.
type Loader interface {
	parser.IncludeLoader
	parser.AsyncIncludeLoader
}

// Noop fails every load with [ErrNotFound].
type Noop struct{}

// Load implements [parser.IncludeLoader].
func (Noop) Load(name string) (string, error) {
	return "", notFound(name)
}

// LoadContext implements [parser.AsyncIncludeLoader].
func (Noop) LoadContext(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "", notFound(name)
}

func notFound(name string) error {
	return ErrNotFound.With(slog.String("path", name))
}
