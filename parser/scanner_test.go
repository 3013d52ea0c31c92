package parser

import (
	"errors"
	"testing"
)

func ptr(s string) *string { return &s }

func scanAll(t *testing.T, src string) ([]Token, error) {
	t.Helper()

	s := scanner{src: src}

	var toks []Token

	for {
		tok, err := s.next()
		if err != nil {
			return toks, err
		}

		if tok == nil {
			return toks, nil
		}

		toks = append(toks, tok)
	}
}

func TestScanner_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "text only",
			input: "hello",
			want:  []Token{TextToken{Text: "hello", Loc: Span{0, 5}}},
		},
		{
			name:  "element with text",
			input: "<mjml>Hello</mjml>",
			want: []Token{
				StartToken{Local: "mjml", Loc: Span{0, 5}},
				EndToken{Loc: Span{5, 6}},
				TextToken{Text: "Hello", Loc: Span{6, 11}},
				CloseToken{Local: "mjml", Loc: Span{11, 18}},
			},
		},
		{
			name:  "attribute forms",
			input: `<a b="1" c d='' e=f/>x</a><!--c-->`,
			want: []Token{
				StartToken{Local: "a", Loc: Span{0, 2}},
				AttributeToken{Local: "b", Value: ptr("1"), Loc: Span{3, 8}},
				AttributeToken{Local: "c", Loc: Span{9, 10}},
				AttributeToken{Local: "d", Value: ptr(""), Loc: Span{11, 15}},
				AttributeToken{Local: "e", Value: ptr("f"), Loc: Span{16, 19}},
				EndToken{Empty: true, Loc: Span{19, 21}},
				TextToken{Text: "x", Loc: Span{21, 22}},
				CloseToken{Local: "a", Loc: Span{22, 26}},
				CommentToken{Text: "c", Loc: Span{26, 34}},
			},
		},
		{
			name:  "spaced equals and close tag",
			input: "<mj-text  align = center ></mj-text >",
			want: []Token{
				StartToken{Local: "mj-text", Loc: Span{0, 8}},
				AttributeToken{Local: "align", Value: ptr("center"), Loc: Span{10, 24}},
				EndToken{Loc: Span{25, 26}},
				CloseToken{Local: "mj-text", Loc: Span{26, 37}},
			},
		},
		{
			name:  "valueless attribute before terminator",
			input: "<br clear>",
			want: []Token{
				StartToken{Local: "br", Loc: Span{0, 3}},
				AttributeToken{Local: "clear", Loc: Span{4, 9}},
				EndToken{Loc: Span{9, 10}},
			},
		},
		{
			name:  "case is preserved",
			input: "<MJML/>",
			want: []Token{
				StartToken{Local: "MJML", Loc: Span{0, 5}},
				EndToken{Empty: true, Loc: Span{5, 7}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanAll(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %#v", len(tt.want), len(got), got)
			}

			for i := range got {
				if !equalToken(got[i], tt.want[i]) {
					t.Errorf("token %d: expected %#v, got %#v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func equalToken(a, b Token) bool {
	aa, aok := a.(AttributeToken)
	ba, bok := b.(AttributeToken)

	if aok != bok {
		return false
	}

	if !aok {
		return a == b
	}

	if (aa.Value == nil) != (ba.Value == nil) {
		return false
	}

	if aa.Value != nil && *aa.Value != *ba.Value {
		return false
	}

	return aa.Local == ba.Local && aa.Loc == ba.Loc
}

func TestScanner_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		span   Span
		detail string
	}{
		{"unterminated comment", "<!-- x", Span{0, 6}, "unterminated comment"},
		{"doctype", "<!DOCTYPE html>", Span{0, 2}, "unsupported markup"},
		{"processing instruction", "<?xml?>", Span{0, 2}, "unsupported markup"},
		{"missing element name", "< mjml>", Span{0, 1}, "expected element name"},
		{"missing close name", "</>", Span{0, 2}, "expected element name"},
		{"unterminated close tag", "</mjml", Span{0, 6}, "unterminated closing tag"},
		{"unterminated tag", "<mjml lang", Span{0, 10}, "unterminated tag"},
		{"unterminated value", `<mjml lang="fr>`, Span{6, 15}, "unterminated attribute value"},
		{"missing value", "<mjml lang=>", Span{6, 11}, "expected attribute value"},
		{"stray slash", "<mjml / >", Span{6, 7}, "expected '>' after '/'"},
		{"adjacent attributes", `<mjml a="1"b="2">`, Span{11, 12}, "expected whitespace before attribute"},
		{"bad attribute name", "<mjml 1a>", Span{6, 7}, "expected attribute name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanAll(t, tt.input)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("expected invalid format error, got %v", err)
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *Error, got %T", err)
			}

			if perr.Span != tt.span {
				t.Errorf("expected span %v, got %v", tt.span, perr.Span)
			}

			if perr.Detail != tt.detail {
				t.Errorf("expected detail %q, got %q", tt.detail, perr.Detail)
			}
		})
	}
}
