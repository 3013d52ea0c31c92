package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

func TestTokens(t *testing.T) {
	var out bytes.Buffer

	ctx := WithOutput(context.Background(), &out)
	ctx = WithInput(ctx, strings.NewReader(`<mjml lang="fr" owa><!-- c -->hi</mjml>`))

	if err := (&Tokens{File: "-"}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{
		{"element-start", "0..5", "mjml"},
		{"attribute", "6..15", `lang="fr"`},
		{"attribute", "16..19", "owa"},
		{"element-end", "19..20", ">"},
		{"comment", "20..30", `"`, "c", `"`},
		{"text", "30..32", `"hi"`},
		{"element-close", "32..39", "mjml"},
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out.String())
	}

	for i, line := range lines {
		if got := strings.Fields(line); strings.Join(got, " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d = %q, want fields %q", i, line, want[i])
		}
	}
}

func TestTokens_InvalidInput(t *testing.T) {
	var out bytes.Buffer

	ctx := WithOutput(context.Background(), &out)
	ctx = WithInput(ctx, strings.NewReader(`<mjml><!doctype html>`))

	err := (&Tokens{File: "-"}).Run(ctx)
	if !errors.Is(err, pkg.ErrParse) || !errors.Is(err, parser.ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrParse wrapping ErrInvalidFormat", err)
	}

	if !strings.Contains(out.String(), "element-start") {
		t.Errorf("tokens before the failure were not printed: %q", out.String())
	}
}
