package loader

import (
	"context"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/mjml/pkg"
)

// Memory resolves include paths from an in-memory map of path to fragment.
type Memory map[string]string

// Load implements [parser.IncludeLoader].
func (m Memory) Load(name string) (string, error) {
	if text, ok := m[name]; ok {
		return text, nil
	}

	return "", notFound(name)
}

// LoadContext implements [parser.AsyncIncludeLoader].
func (m Memory) LoadContext(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return m.Load(name)
}

// FromYAML decodes a fragment bundle: a YAML mapping from include path to
// fragment text, e.g.
//
//	header.mjml: |
//	  <mj-section><mj-column><mj-text>Hi</mj-text></mj-column></mj-section>
//	style.css: "p { margin: 0 }"
func FromYAML(data []byte) (Memory, error) {
	var m Memory
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, pkg.ErrYAMLUnmarshal.Wrap(err).
			With(slog.String("source", "include bundle"))
	}

	if m == nil {
		m = Memory{}
	}

	return m, nil
}

// ReadYAML reads a fragment bundle from r. See [FromYAML].
func ReadYAML(r io.Reader) (Memory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err).
			With(slog.String("source", "include bundle"))
	}

	return FromYAML(data)
}
