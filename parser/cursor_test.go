package parser

import (
	"errors"
	"testing"
)

func TestCursor_Rewind(t *testing.T) {
	c := NewCursor("<a>b</a>", Origin{})

	first, err := c.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Rewind(first)

	again, err := c.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if again != first {
		t.Errorf("expected rewound token %#v, got %#v", first, again)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second rewind")
		}
	}()

	c.Rewind(first)
	c.Rewind(first)
}

func TestCursor_NextAttribute(t *testing.T) {
	c := NewCursor(`<a x="1" y>`, Origin{})

	if _, err := c.AssertElementStart(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string

	for {
		attr, err := c.NextAttribute()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if attr == nil {
			break
		}

		names = append(names, attr.Local)
	}

	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("expected [x y], got %v", names)
	}

	// The terminator was rewound, not consumed.
	end, err := c.AssertElementEnd()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if end.Empty || end.Loc != (Span{10, 11}) {
		t.Errorf("unexpected end token %#v", end)
	}
}

func TestCursor_AssertNext(t *testing.T) {
	c := NewCursor("  ", Origin{Path: "frag.mjml"})

	if _, err := c.AssertNext(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := c.AssertNext()
	if !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected end of stream, got %v", err)
	}

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	if perr.Span != (Span{2, 2}) {
		t.Errorf("expected span 2..2, got %v", perr.Span)
	}

	if perr.Origin.Path != "frag.mjml" {
		t.Errorf("expected include origin, got %v", perr.Origin)
	}
}

func TestCursor_Unexpected(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		kind *Error
	}{
		{"start", StartToken{Local: "div", Loc: Span{6, 10}}, ErrUnexpectedElement},
		{"text", TextToken{Text: "Hello", Loc: Span{6, 11}}, ErrUnexpectedToken},
		{"close", CloseToken{Local: "p", Loc: Span{0, 4}}, ErrUnexpectedToken},
		{"end", EndToken{Loc: Span{3, 4}}, ErrUnexpectedToken},
	}

	c := NewCursor("", Origin{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Unexpected(tt.tok)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind.Kind, err.Kind)
			}

			if err.Span != tt.tok.Span() {
				t.Errorf("expected span %v, got %v", tt.tok.Span(), err.Span)
			}
		})
	}
}

func TestCursor_Warnings(t *testing.T) {
	c := NewCursor("", Origin{})
	c.AddWarning(WarningUnexpectedAttribute, Span{1, 2}, WarnName("a", "b", "c"))
	c.AppendWarnings(Warning{
		Kind:   WarningDuplicateElement,
		Origin: Origin{Path: "x"},
		Span:   Span{3, 4},
	})
	c.AddWarning(WarningUnexpectedAttribute, Span{5, 6})

	ws := c.Warnings()
	if len(ws) != 3 {
		t.Fatalf("expected 3 warnings, got %d", len(ws))
	}

	if ws[0].Name != "a" || len(ws[0].Expected) != 2 {
		t.Errorf("unexpected first warning %#v", ws[0])
	}

	if ws[1].Kind != WarningDuplicateElement || ws[1].Origin.Path != "x" {
		t.Errorf("unexpected second warning %#v", ws[1])
	}

	if ws[2].Span != (Span{5, 6}) {
		t.Errorf("unexpected third warning %#v", ws[2])
	}

	// The returned slice is a copy.
	ws[0].Name = "changed"
	if c.Warnings()[0].Name != "a" {
		t.Error("Warnings returned a shared slice")
	}
}

func TestLocateSnippet(t *testing.T) {
	line, col := Locate("a\nbé c", 6)
	if line != 2 || col != 4 {
		t.Errorf("expected 2:4, got %d:%d", line, col)
	}

	got := Snippet("<mjml>Hello</mjml>", Span{6, 11})
	want := "  1 | <mjml>Hello</mjml>\n" +
		"            ^^^^^\n"

	if got != want {
		t.Errorf("unexpected snippet:\n%s\nwant:\n%s", got, want)
	}
}

func TestError_String(t *testing.T) {
	err := NewError(ErrUnexpectedElement, Origin{Path: "a.mjml"}, Span{6, 12}).
		WithName("other", "inc", "item")

	want := `unexpected element "other" in include(a.mjml) at 6..12`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	cause := errors.New("boom")
	wrapped := NewError(ErrIncludeLoader, Origin{}, Span{0, 4}).WithCause(cause)

	if !errors.Is(wrapped, cause) {
		t.Error("expected cause to be reachable with errors.Is")
	}

	if errors.Is(wrapped, ErrCanceled) {
		t.Error("kinds must not match across sentinels")
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel *Error
		want     string
	}{
		{KindEndOfStream, ErrEndOfStream, "unexpected end of stream"},
		{KindUnexpectedToken, ErrUnexpectedToken, "unexpected token"},
		{KindUnexpectedElement, ErrUnexpectedElement, "unexpected element"},
		{KindInvalidFormat, ErrInvalidFormat, "invalid format"},
		{KindMissingAttribute, ErrMissingAttribute, "missing attribute"},
		{KindIncludeLoader, ErrIncludeLoader, "unable to load include"},
		{KindMaxDepthExceeded, ErrMaxDepthExceeded, "maximum include depth exceeded"},
		{KindCanceled, ErrCanceled, "parse canceled"},
		{ErrorKind(99), nil, "ErrorKind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}

			if tt.sentinel == nil {
				return
			}

			if tt.sentinel.Kind != tt.kind {
				t.Errorf("sentinel has kind %v, want %v", tt.sentinel.Kind, tt.kind)
			}

			err := NewError(tt.sentinel, Origin{}, Span{}).WithDetail("x")
			if !errors.Is(err, &Error{Kind: tt.kind}) {
				t.Errorf("expected %v to match kind %v", err, tt.kind)
			}
		})
	}
}
