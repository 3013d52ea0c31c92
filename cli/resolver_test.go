package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/mjml/pkg"
)

func TestResolve_Flatten(t *testing.T) {
	r, err := resolve(strings.NewReader(`
log-level: debug
log:
  pretty: false
  time_layout: kitchen
check:
  max_include_depth: 4
  include-dir: [partials, 2]
  timeout: 1.5
`))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	want := config{
		"log-level":               "debug",
		"log-pretty":              false,
		"log-time-layout":         "kitchen",
		"check-max-include-depth": "4",
		"check-include-dir":       []any{"partials", "2"},
		"check-timeout":           "1.5",
	}

	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Empty(t *testing.T) {
	r, err := resolve(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if len(r.(config)) != 0 {
		t.Errorf("resolve() = %v, want empty", r)
	}
}

func TestResolve_Invalid(t *testing.T) {
	_, err := resolve(strings.NewReader("log: [unterminated"))
	if !errors.Is(err, pkg.ErrYAMLUnmarshal) {
		t.Errorf("resolve() error = %v, want ErrYAMLUnmarshal", err)
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config{
		"log-level":       "warn",
		"jobs":            "2",
		"check-jobs":      "8",
		"check-strict":    true,
		"tokens-anything": "x",
	}

	check := &kong.Path{Command: &kong.Node{Name: "check"}}
	tokens := &kong.Path{Command: &kong.Node{Name: "tokens"}}
	app := &kong.Path{}

	tests := []struct {
		name   string
		parent *kong.Path
		flag   string
		want   any
	}{
		{"top level", app, "log-level", "warn"},
		{"underscore flag name", app, "log_level", "warn"},
		{"command scoped wins", check, "jobs", "8"},
		{"falls back to bare", tokens, "jobs", "2"},
		{"command scoped only", check, "strict", true},
		{"other command", tokens, "strict", nil},
		{"missing", app, "nope", nil},
		{"nil path", nil, "jobs", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			got, err := cfg.Resolve(nil, tt.parent, flag)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func BenchmarkResolve(b *testing.B) {
	const doc = `
log: {level: debug, format: json, pretty: false}
check: {jobs: 4, strict: true, include-dir: [a, b, c]}
`

	for b.Loop() {
		if _, err := resolve(strings.NewReader(doc)); err != nil {
			b.Fatal(err)
		}
	}
}
