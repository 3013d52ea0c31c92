package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/mjml/cli/cmd"
	"github.com/ardnew/mjml/log"
	"github.com/ardnew/mjml/pkg"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", pkg.Name+"-cli-test-")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	code := m.Run()

	_ = os.RemoveAll(home)

	os.Exit(code)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	defer log.SetDefault(log.Default())

	var out bytes.Buffer

	ctx := cmd.WithOutput(context.Background(), &out)

	exited := -1

	err := Run(ctx, func(code int) { exited = code }, args...)
	if exited > 0 {
		t.Fatalf("kong exited with status %d", exited)
	}

	return out.String(), err
}

func document(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.mjml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun_Check(t *testing.T) {
	doc := document(t, `<mjml><mj-body></mj-body></mjml>`)

	tests := []struct {
		name string
		args []string
	}{
		{"explicit command", []string{"check", doc}},
		{"default command", []string{doc}},
		{"with log flags", []string{"--log-level=error", "--no-log-pretty", "check", doc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if !strings.Contains(out, doc+": ok") {
				t.Errorf("output = %q", out)
			}
		})
	}

	if _, err := os.Stat(pkg.ConfigDir()); err != nil {
		t.Errorf("config directory not created: %v", err)
	}
}

func TestRun_CheckFails(t *testing.T) {
	doc := document(t, `<mjml><mj-bdy/></mjml>`)

	if _, err := run(t, "check", doc); !errors.Is(err, cmd.ErrCheckFailed) {
		t.Errorf("Run() error = %v, want ErrCheckFailed", err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	doc := document(t, `<mjml lang="en" nope="1"><mj-body/></mjml>`)

	cfg := filepath.Join(t.TempDir(), "mjml.yaml")
	if err := os.WriteFile(cfg, []byte("check:\n  format: json\n  strict: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", cfg, "check", doc)
	if !errors.Is(err, cmd.ErrCheckFailed) {
		t.Fatalf("Run() error = %v, want ErrCheckFailed from strict", err)
	}

	var reports []cmd.Report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	if len(reports) != 1 || reports[0].Warnings != 1 {
		t.Errorf("reports = %+v", reports)
	}

	// Flags override the file.
	out, err = run(t, "--config", cfg, "check", "--format=text", "--no-strict", doc)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out, "1 warning") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_Tokens(t *testing.T) {
	out, err := run(t, "tokens", document(t, `<mjml/>`))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.HasPrefix(out, "element-start") || !strings.Contains(out, "/>") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_BadFlag(t *testing.T) {
	if _, err := run(t, "check", "--format=xml", "-"); err == nil {
		t.Error("Run() accepted an invalid --format")
	}
}
