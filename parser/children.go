package parser

import (
	"context"
	"maps"
	"slices"
)

// Content selects which character data a children walk reports.
type Content uint8

const (
	// ContentText reports every text token, including whitespace-only text.
	ContentText Content = 1 << iota
	// ContentComments reports comments.
	ContentComments

	// ContentNone drops comments and whitespace-only text.
	ContentNone Content = 0
)

// Walk feeds the tokens of an element's content to visit until the closing
// tag named close, which is pushed back for the caller to consume.
//
// With close empty, Walk reads a fragment that ends at end of input rather
// than at a closing tag.
//
// Whitespace-only text is skipped unless mode has [ContentText]; comments are
// skipped unless mode has [ContentComments]. Any other token, including a
// closing tag for some other element, is passed to visit.
func Walk(c *Cursor, close string, mode Content, visit func(Token) error) error {
	for {
		var (
			tok Token
			err error
		)

		if close == "" {
			tok, err = c.Next()
			if err == nil && tok == nil {
				return nil
			}
		} else {
			tok, err = c.AssertNext()
		}

		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case CloseToken:
			if close != "" && t.Local == close {
				c.Rewind(t)

				return nil
			}

		case TextToken:
			if mode&ContentText == 0 && isBlank(t.Text) {
				continue
			}

		case CommentToken:
			if mode&ContentComments == 0 {
				continue
			}
		}

		if err := visit(tok); err != nil {
			return err
		}
	}
}

// ChildParser parses one child element whose [StartToken] has been consumed.
type ChildParser[C any] func(
	ctx context.Context,
	p *Parser,
	c *Cursor,
	start StartToken,
) (C, error)

// Table dispatches child elements by name.
type Table[C any] map[string]ChildParser[C]

// Names returns the element names in t, sorted.
func (t Table[C]) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Parse dispatches start to its entry in t. An unknown name fails with
// [ErrUnexpectedElement] listing the accepted names.
func (t Table[C]) Parse(
	ctx context.Context,
	p *Parser,
	c *Cursor,
	start StartToken,
) (C, error) {
	fn, ok := t[start.Local]
	if !ok {
		var zero C

		return zero, NewError(ErrUnexpectedElement, c.Origin(), start.Loc).
			WithName(start.Local, t.Names()...)
	}

	return fn(ctx, p, c, start)
}

// Sequence returns a children parser collecting an ordered list of nodes.
// Elements dispatch through table. Text and comments reported by mode are
// converted with text and comment; a nil text rejects non-blank text and a
// nil comment drops comments.
func Sequence[C any](
	close string,
	table Table[C],
	mode Content,
	text func(TextToken) C,
	comment func(CommentToken) C,
) ChildrenParser[[]C] {
	return func(ctx context.Context, p *Parser, c *Cursor) ([]C, error) {
		var out []C

		err := Walk(c, close, mode, func(tok Token) error {
			switch t := tok.(type) {
			case StartToken:
				child, err := table.Parse(ctx, p, c, t)
				if err != nil {
					return err
				}

				out = append(out, child)

			case TextToken:
				if text == nil {
					return c.Unexpected(t)
				}

				out = append(out, text(t))

			case CommentToken:
				if comment != nil {
					out = append(out, comment(t))
				}

			default:
				return c.Unexpected(tok)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		return out, nil
	}
}

// Empty returns a children parser for an element that admits only
// whitespace and comments as content.
func Empty[C any](close string) ChildrenParser[C] {
	return func(_ context.Context, _ *Parser, c *Cursor) (C, error) {
		var zero C

		return zero, Walk(c, close, ContentNone, func(tok Token) error {
			return c.Unexpected(tok)
		})
	}
}

// Text returns a children parser for an element whose content is raw
// character data, such as a title or a style sheet. Comments inside the
// content are dropped; nested markup is an error.
func Text(close string) ChildrenParser[string] {
	return func(_ context.Context, _ *Parser, c *Cursor) (string, error) {
		var out []byte

		err := Walk(c, close, ContentText, func(tok Token) error {
			t, ok := tok.(TextToken)
			if !ok {
				return c.Unexpected(tok)
			}

			out = append(out, t.Text...)

			return nil
		})
		if err != nil {
			return "", err
		}

		return string(out), nil
	}
}
