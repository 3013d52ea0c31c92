package parser

//go:generate go tool stringer --linecomment --type TokenKind --output token_string.go

import "strconv"

// Span is a half-open range of byte offsets into the parsed text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// String renders s as "start..end".
func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}

// TokenKind identifies the structural role of a [Token].
type TokenKind int

const (
	KindElementStart TokenKind = iota // element-start
	KindElementEnd                    // element-end
	KindElementClose                  // element-close
	KindAttribute                     // attribute
	KindText                          // text
	KindComment                       // comment
)

// Token is one structural unit produced by the [Cursor].
// Tokens are immutable values.
type Token interface {
	Kind() TokenKind
	Span() Span
}

// StartToken is the "<name" opening of an element.
type StartToken struct {
	Local string
	Loc   Span
}

// EndToken is the ">" or "/>" terminating an opening tag.
// Empty reports the self-closing form.
type EndToken struct {
	Empty bool
	Loc   Span
}

// CloseToken is a complete "</name>" closing tag.
type CloseToken struct {
	Local string
	Loc   Span
}

// AttributeToken is one attribute of an opening tag.
//
// A nil Value means the attribute was written without "=value"; a non-nil
// pointer to the empty string means it was written with an empty value.
type AttributeToken struct {
	Local string
	Value *string
	Loc   Span
}

// TextToken is a run of character data between tags.
type TextToken struct {
	Text string
	Loc  Span
}

// CommentToken is an HTML comment; Text excludes the delimiters.
type CommentToken struct {
	Text string
	Loc  Span
}

func (StartToken) Kind() TokenKind     { return KindElementStart }
func (EndToken) Kind() TokenKind       { return KindElementEnd }
func (CloseToken) Kind() TokenKind     { return KindElementClose }
func (AttributeToken) Kind() TokenKind { return KindAttribute }
func (TextToken) Kind() TokenKind      { return KindText }
func (CommentToken) Kind() TokenKind   { return KindComment }

func (t StartToken) Span() Span     { return t.Loc }
func (t EndToken) Span() Span       { return t.Loc }
func (t CloseToken) Span() Span     { return t.Loc }
func (t AttributeToken) Span() Span { return t.Loc }
func (t TextToken) Span() Span      { return t.Loc }
func (t CommentToken) Span() Span   { return t.Loc }
