package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func plain(buf *bytes.Buffer, opts ...Option) Logger {
	return Make(buf, append([]Option{
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout("none"),
	}, opts...)...)
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON record %q: %v", line, err)
		}

		out = append(out, m)
	}

	return out
}

func TestLogger_Make_Defaults(t *testing.T) {
	l := Make(nil)

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}

	if l.caller != DefaultCaller || l.pretty != DefaultPretty {
		t.Errorf("caller=%v pretty=%v, want %v %v",
			l.caller, l.pretty, DefaultCaller, DefaultPretty)
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var l Logger

	l.Trace("x")
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	l.InfoContext(context.Background(), "x")

	if l.Enabled(context.Background(), LevelError) {
		t.Error("zero Logger reports enabled")
	}

	if w := l.With(slog.String("k", "v")); w.Logger != nil {
		t.Error("With on zero Logger allocated a handler")
	}

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero Logger does not report defaults")
	}
}

func TestLogger_Levels_Filter(t *testing.T) {
	tests := []struct {
		name   string
		log    func(Logger, string, ...slog.Attr)
		min    Level
		logged bool
		level  string
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true, "TRACE"},
		{"trace at debug", Logger.Trace, LevelDebug, false, ""},
		{"debug at debug", Logger.Debug, LevelDebug, true, "DEBUG"},
		{"debug at info", Logger.Debug, LevelInfo, false, ""},
		{"info at info", Logger.Info, LevelInfo, true, "INFO"},
		{"info at warn", Logger.Info, LevelWarn, false, ""},
		{"warn at warn", Logger.Warn, LevelWarn, true, "WARN"},
		{"error at error", Logger.Error, LevelError, true, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.log(plain(&buf, WithLevel(tt.min)), "message")

			records := decode(t, &buf)
			if got := len(records) == 1; got != tt.logged {
				t.Fatalf("logged = %v, want %v (%q)", got, tt.logged, buf.String())
			}

			if tt.logged && records[0]["level"] != tt.level {
				t.Errorf("level = %v, want %s", records[0]["level"], tt.level)
			}
		})
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf).With(slog.String("origin", "a.mjml")).Info("resolved")

	records := decode(t, &buf)
	if len(records) != 1 || records[0]["origin"] != "a.mjml" {
		t.Fatalf("records = %v", records)
	}

	if _, ok := records[0]["time"]; ok {
		t.Error("time present with layout none")
	}
}

func TestLogger_Wrap_KeepsBase(t *testing.T) {
	var first, second bytes.Buffer

	base := plain(&first, WithLevel(LevelWarn))
	wrapped := base.Wrap(WithOutput(&second))

	wrapped.Info("dropped")
	wrapped.Warn("kept")

	if first.Len() != 0 {
		t.Errorf("base output written: %q", first.String())
	}

	records := decode(t, &second)
	if len(records) != 1 || records[0]["msg"] != "kept" {
		t.Fatalf("records = %v", records)
	}

	if wrapped.Format() != FormatJSON {
		t.Errorf("Format() = %v, want json", wrapped.Format())
	}
}

func TestLogger_Caller_ReportsCallSite(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf, WithCaller(true)).Info("here")

	records := decode(t, &buf)
	src, ok := records[0]["source"].(map[string]any)
	if !ok {
		t.Fatalf("source missing: %v", records[0])
	}

	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source file = %q, want log_test.go", file)
	}
}

func TestLogger_Text_Plain(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText), WithPretty(false), WithTimeLayout(""))
	l.Warn("slow include", slog.Duration("took", 2*time.Second))

	want := "level=WARN msg=\"slow include\" took=2s\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Text_Styled(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"), WithLevel(LevelTrace))
	l = l.With(slog.Group("doc", slog.String("path", "a b.mjml")))
	l.Trace("walk",
		slog.Bool("ok", true),
		slog.Any("err", errors.New("boom")),
		slog.Int("depth", 3))

	out := buf.String()
	for _, want := range []string{
		"trace", "walk", "doc.path", `"a b.mjml"`, "ok", "true", "boom", "depth", "3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one line, got %q", out)
	}
}

func TestLogger_JSON_Styled(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))
	l.Info("indented", slog.String("k", "v"))

	out := buf.String()
	if !strings.HasPrefix(out, "{\n  ") {
		t.Errorf("output is not indented: %q", out)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if m["k"] != "v" {
		t.Errorf("k = %v", m["k"])
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer

	l := plain(&buf)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Go(func() { l.Info("concurrent", slog.Int("id", i)) })
	}

	wg.Wait()

	if n := len(decode(t, &buf)); n != 100 {
		t.Errorf("records = %d, want 100", n)
	}
}

func TestPackage_Functions_UseDefault(t *testing.T) {
	saved := Default()
	t.Cleanup(func() { SetDefault(saved) })

	var buf bytes.Buffer

	SetDefault(plain(&buf))
	Config(WithLevel(LevelTrace))

	tests := []struct {
		name  string
		log   func()
		level string
	}{
		{"Trace", func() { Trace("m") }, "TRACE"},
		{"DebugContext", func() { DebugContext(context.Background(), "m") }, "DEBUG"},
		{"Info", func() { Info("m") }, "INFO"},
		{"WarnContext", func() { WarnContext(context.Background(), "m") }, "WARN"},
		{"Error", func() { Error("m") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()

			records := decode(t, &buf)
			if len(records) != 1 || records[0]["level"] != tt.level {
				t.Fatalf("records = %v, want one %s record", records, tt.level)
			}
		})
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false))

	for i := 0; b.Loop(); i++ {
		l.Info("benchmark", slog.Int("i", i))
	}
}

func BenchmarkLogger_Info_Styled(b *testing.B) {
	var buf bytes.Buffer

	l := Make(&buf)

	for i := 0; b.Loop(); i++ {
		l.Info("benchmark", slog.Int("i", i))
	}
}
