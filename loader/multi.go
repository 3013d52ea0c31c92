package loader

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
)

type route struct {
	prefix string
	loader Loader
}

// Multi routes each include path to the loader registered for the longest
// matching path prefix. The full path is passed to the selected loader.
type Multi struct {
	routes   []route
	fallback Loader
}

// NewMulti returns a Multi that sends unmatched paths to fallback. A nil
// fallback fails unmatched paths with [ErrNoRoute].
func NewMulti(fallback Loader) *Multi {
	return &Multi{fallback: fallback}
}

// Route registers l for paths beginning with prefix and returns m.
func (m *Multi) Route(prefix string, l Loader) *Multi {
	m.routes = append(m.routes, route{prefix: prefix, loader: l})
	slices.SortStableFunc(m.routes, func(a, b route) int {
		return cmp.Compare(len(b.prefix), len(a.prefix))
	})

	return m
}

func (m *Multi) pick(name string) (Loader, error) {
	for _, r := range m.routes {
		if strings.HasPrefix(name, r.prefix) {
			return r.loader, nil
		}
	}

	if m.fallback != nil {
		return m.fallback, nil
	}

	return nil, ErrNoRoute.With(slog.String("path", name))
}

// Load implements [parser.IncludeLoader].
func (m *Multi) Load(name string) (string, error) {
	l, err := m.pick(name)
	if err != nil {
		return "", err
	}

	return l.Load(name)
}

// LoadContext implements [parser.AsyncIncludeLoader].
func (m *Multi) LoadContext(ctx context.Context, name string) (string, error) {
	l, err := m.pick(name)
	if err != nil {
		return "", err
	}

	return l.LoadContext(ctx, name)
}

// Chain tries each loader in order and returns the first fragment found.
// Only [ErrNotFound] moves on to the next loader; any other error stops the
// search. An empty Chain finds nothing.
type Chain []Loader

// Load implements [parser.IncludeLoader].
func (c Chain) Load(name string) (string, error) {
	for _, l := range c {
		text, err := l.Load(name)
		if !errors.Is(err, ErrNotFound) {
			return text, err
		}
	}

	return "", notFound(name)
}

// LoadContext implements [parser.AsyncIncludeLoader].
func (c Chain) LoadContext(ctx context.Context, name string) (string, error) {
	for _, l := range c {
		text, err := l.LoadContext(ctx, name)
		if !errors.Is(err, ErrNotFound) {
			return text, err
		}
	}

	return "", notFound(name)
}
