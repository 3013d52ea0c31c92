package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/mjml/pkg"
)

// resolve is a [kong.ConfigurationLoader] for YAML config files.
//
// Nested mappings are flattened by joining keys with "-", so both of these
// set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Flags of a subcommand may be written either bare or under the command's
// name, and underscores may be used in place of hyphens:
//
//	check:
//	  max_include_depth: 4
//	  include-dir: [partials, shared]
//
// Command-line flags override config file values. An empty file is valid.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, pkg.ErrYAMLUnmarshal.Wrap(err)
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for key, val := range m {
		key = normalize(key)
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := val.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = scalar(val)
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := normalize(flag.Name)

	if parent != nil && parent.Command != nil {
		if v, ok := c[normalize(parent.Command.Name)+"-"+name]; ok {
			return v, nil
		}
	}

	if v, ok := c[name]; ok {
		return v, nil
	}

	return nil, nil
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// scalar converts YAML values into the forms kong's mappers accept. Numbers
// become strings; sequences keep their elements, each converted.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out
	default:
		return v
	}
}
