package pkg

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIdentity(t *testing.T) {
	if Name != "mjml" {
		t.Errorf("Name = %q, want mjml", Name)
	}

	if Description == "" {
		t.Error("Description is empty")
	}

	if len(Author) == 0 {
		t.Error("Author is empty")
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}

	if want := strings.TrimSpace(string(buf)); Version != want {
		t.Errorf("Version = %q, want %q", Version, want)
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/bin/mjml", "mjml"},
		{"/tmp/mjml-dev.exe", "mjml-dev"},
		{"/home/u/.mjml", "mjml"},
		{"/tmp/__debug_bin3141", Name},
		{"/tmp/...", Name},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := prefixOf(tt.path); got != tt.want {
				t.Errorf("prefixOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	p := ConfigPath()
	if filepath.Base(p) != ConfigFile {
		t.Errorf("ConfigPath() = %q", p)
	}

	if filepath.Dir(p) != ConfigDir() {
		t.Errorf("ConfigPath() = %q, not under %q", p, ConfigDir())
	}
}

func TestError_WrapWith(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrReadInput.Wrap(cause).With(slog.String("file", "a.mjml"))

	if !errors.Is(err, ErrReadInput) {
		t.Error("wrapped error does not match its sentinel")
	}

	if errors.Is(err, ErrParse) {
		t.Error("wrapped error matches an unrelated sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error does not match its cause")
	}

	if got, want := err.Error(), "failed to read input: disk on fire"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if len(err.Attrs()) != 1 || len(ErrReadInput.Attrs()) != 0 {
		t.Error("With mutated the sentinel")
	}

	if WrapError(err) != err {
		t.Error("WrapError did not return the existing *Error")
	}

	group := err.LogValue().Group()
	if len(group) != 3 || group[2].Key != "file" {
		t.Errorf("LogValue() = %v", group)
	}
}
