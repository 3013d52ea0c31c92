package parser

import "slices"

// Cursor is the stateful view over one document's text used by the parse
// engine. It tokenizes on demand, holds at most one rewound token of
// lookahead, and accumulates warnings.
//
// A Cursor borrows its text and is not safe for concurrent use. Create one
// per document (root or included fragment).
type Cursor struct {
	scan     scanner
	pending  Token
	warnings []Warning
}

// NewCursor returns a Cursor positioned at the start of text.
func NewCursor(text string, origin Origin) *Cursor {
	return &Cursor{scan: scanner{src: text, origin: origin}}
}

// Origin reports which document the cursor reads.
func (c *Cursor) Origin() Origin { return c.scan.origin }

// Source returns the complete text being parsed.
func (c *Cursor) Source() string { return c.scan.src }

// Next returns the next token, or nil at end of input.
func (c *Cursor) Next() (Token, error) {
	if c.pending != nil {
		tok := c.pending
		c.pending = nil

		return tok, nil
	}

	return c.scan.next()
}

// AssertNext returns the next token, failing with [ErrEndOfStream] at end of
// input.
func (c *Cursor) AssertNext() (Token, error) {
	tok, err := c.Next()
	if err != nil {
		return nil, err
	}

	if tok == nil {
		end := len(c.scan.src)

		return nil, NewError(ErrEndOfStream, c.Origin(), Span{end, end})
	}

	return tok, nil
}

// Rewind pushes tok back so the next call to [Cursor.Next] returns it.
// The grammar needs one token of lookahead; rewinding twice without an
// intervening read panics.
func (c *Cursor) Rewind(tok Token) {
	if c.pending != nil {
		panic("parser: cursor rewind buffer already holds a " +
			c.pending.Kind().String() + " token")
	}

	c.pending = tok
}

// NextAttribute returns the next attribute of the opening tag being parsed,
// or nil once the attributes are exhausted.
func (c *Cursor) NextAttribute() (*AttributeToken, error) {
	tok, err := c.Next()
	if err != nil || tok == nil {
		return nil, err
	}

	if attr, ok := tok.(AttributeToken); ok {
		return &attr, nil
	}

	c.Rewind(tok)

	return nil, nil
}

// AssertElementStart returns the next token, which must open an element.
func (c *Cursor) AssertElementStart() (StartToken, error) {
	tok, err := c.AssertNext()
	if err != nil {
		return StartToken{}, err
	}

	start, ok := tok.(StartToken)
	if !ok {
		return StartToken{}, c.Unexpected(tok)
	}

	return start, nil
}

// AssertElementEnd returns the next token, which must terminate an opening
// tag.
func (c *Cursor) AssertElementEnd() (EndToken, error) {
	tok, err := c.AssertNext()
	if err != nil {
		return EndToken{}, err
	}

	end, ok := tok.(EndToken)
	if !ok {
		return EndToken{}, c.Unexpected(tok)
	}

	return end, nil
}

// AssertElementClose returns the next token, which must be a closing tag.
func (c *Cursor) AssertElementClose() (CloseToken, error) {
	tok, err := c.AssertNext()
	if err != nil {
		return CloseToken{}, err
	}

	closing, ok := tok.(CloseToken)
	if !ok {
		return CloseToken{}, c.Unexpected(tok)
	}

	return closing, nil
}

// Unexpected returns the error describing tok appearing where the grammar
// does not allow it. Element starts produce [ErrUnexpectedElement]; every
// other token produces [ErrUnexpectedToken].
func (c *Cursor) Unexpected(tok Token) *Error {
	if start, ok := tok.(StartToken); ok {
		return NewError(ErrUnexpectedElement, c.Origin(), start.Loc).
			WithName(start.Local)
	}

	err := NewError(ErrUnexpectedToken, c.Origin(), tok.Span()).
		WithDetail(tok.Kind().String())

	if closing, ok := tok.(CloseToken); ok {
		err.Name = closing.Local
	}

	return err
}

// AddWarning records a warning at span. It never affects control flow.
func (c *Cursor) AddWarning(kind WarningKind, span Span, opts ...WarningOption) {
	w := Warning{Kind: kind, Origin: c.Origin(), Span: span}

	for _, opt := range opts {
		opt(&w)
	}

	c.warnings = append(c.warnings, w)
}

// AppendWarnings merges warnings collected by another cursor, typically
// one reading an included fragment.
func (c *Cursor) AppendWarnings(ws ...Warning) {
	c.warnings = append(c.warnings, ws...)
}

// Warnings returns the warnings recorded so far in encounter order.
func (c *Cursor) Warnings() []Warning {
	return slices.Clone(c.warnings)
}
