package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func names(srcs []Source) []string {
	out := make([]string, len(srcs))
	for i, s := range srcs {
		out[i] = s.Name
	}

	return out
}

func TestSources_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.mjml", "A")
	b := writeFile(t, dir, "b.mjml", "B")

	link := filepath.Join(dir, "link.mjml")
	if err := os.Symlink(a, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	rel, err := filepath.Rel(mustGetwd(t), a)
	if err != nil {
		t.Fatal(err)
	}

	srcs := Sources(context.Background(), []string{a, rel, link, b})
	if got := names(srcs); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Sources() = %v, want [%s %s]", got, a, b)
	}

	for i, want := range []string{"A", "B"} {
		text, err := srcs[i].Read()
		if err != nil || text != want {
			t.Errorf("source %d: Read() = %q, %v", i, text, err)
		}
	}
}

func TestSources_StdinLast(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.mjml", "A")

	ctx := WithInput(context.Background(), strings.NewReader("from stdin"))

	srcs := Sources(ctx, []string{"-", a, "-"})
	if got := names(srcs); len(got) != 2 || got[0] != a || got[1] != "<stdin>" {
		t.Fatalf("Sources() = %v", got)
	}

	text, err := srcs[1].Read()
	if err != nil || text != "from stdin" {
		t.Errorf("stdin Read() = %q, %v", text, err)
	}
}

func TestSources_MissingKept(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.mjml")

	srcs := Sources(context.Background(), []string{missing, missing})
	if len(srcs) != 2 {
		t.Fatalf("Sources() = %v, want both missing entries", names(srcs))
	}

	if _, err := srcs[0].Read(); err == nil {
		t.Error("Read() of a missing file succeeded")
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	return wd
}
