package parser

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ardnew/mjml/log"
)

// AttributesParser consumes the attribute tokens of an opening tag.
type AttributesParser[A any] func(c *Cursor) (A, error)

// ChildrenParser consumes the content of an element up to, but not
// including, its closing tag.
type ChildrenParser[C any] func(ctx context.Context, p *Parser, c *Cursor) (C, error)

// Element binds an element kind to its attribute and children protocols.
// A nil Attributes warns about every attribute; a nil Children admits no
// content besides whitespace and comments.
type Element[T Tag, A, C any] struct {
	Attributes AttributesParser[A]
	Children   ChildrenParser[C]
}

// Parse parses the rest of an element whose [StartToken] the caller has
// already consumed: attributes, then the tag terminator, then (unless the
// tag is self-closing) children and the matching closing tag.
func (e Element[T, A, C]) Parse(
	ctx context.Context,
	p *Parser,
	c *Cursor,
) (*Component[T, A, C], error) {
	var tag T

	name := tag.TagName()
	out := new(Component[T, A, C])

	if e.Attributes != nil {
		attrs, err := e.Attributes(c)
		if err != nil {
			return nil, err
		}

		out.Attributes = attrs
	} else if _, err := ParseNoAttributes(c); err != nil {
		return nil, err
	}

	end, err := c.AssertElementEnd()
	if err != nil {
		return nil, err
	}

	if end.Empty {
		return out, nil
	}

	if e.Children != nil {
		children, err := e.Children(ctx, p, c)
		if err != nil {
			return nil, err
		}

		out.Children = children
	} else if _, err := Empty[struct{}](name)(ctx, p, c); err != nil {
		return nil, err
	}

	closing, err := c.AssertElementClose()
	if err != nil {
		return nil, err
	}

	if closing.Local != name {
		return nil, c.Unexpected(closing)
	}

	return out, nil
}

// Parser carries the state shared by one recursive descent: the capability
// resolving included fragments, the logger, and the current include depth.
//
// The token-consumption algorithm is the same for every Parser; only the
// resolve capability differs between [NewParser] and [NewAsyncParser].
type Parser struct {
	resolve  func(ctx context.Context, name string) (string, error)
	logger   log.Logger
	maxDepth int
	depth    int
}

// NewParser returns a Parser whose include resolution never suspends.
func NewParser(opts Options) *Parser {
	p := &Parser{
		logger:   opts.Logger,
		maxDepth: opts.MaxIncludeDepth,
	}

	if l := opts.IncludeLoader; l != nil {
		p.resolve = func(_ context.Context, name string) (string, error) {
			return l.Load(name)
		}
	}

	return p.init()
}

// NewAsyncParser returns a Parser whose include resolution waits on an
// [AsyncIncludeLoader] and observes cancellation of the parse context.
func NewAsyncParser(opts AsyncOptions) *Parser {
	p := &Parser{
		logger:   opts.Logger,
		maxDepth: opts.MaxIncludeDepth,
	}

	if l := opts.IncludeLoader; l != nil {
		p.resolve = l.LoadContext
	}

	return p.init()
}

func (p *Parser) init() *Parser {
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxIncludeDepth
	}

	return p
}

// Logger returns the logger configured for this parse.
func (p *Parser) Logger() log.Logger { return p.logger }

// Resolve loads the text of the fragment called name. Span locates the
// element requesting it in c, for error attribution.
//
// This is the only point at which a parse may wait on the outside world,
// so cancellation of ctx is checked here.
func (p *Parser) Resolve(
	ctx context.Context,
	c *Cursor,
	name string,
	span Span,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewError(ErrCanceled, c.Origin(), span).
			WithName(name).
			WithCause(err)
	}

	if p.resolve == nil {
		return "", NewError(ErrIncludeLoader, c.Origin(), span).
			WithName(name).
			WithDetail("no include loader configured")
	}

	p.logger.DebugContext(ctx, "resolve include",
		slog.String("path", name),
		slog.String("origin", c.Origin().String()),
		slog.Int("depth", p.depth),
	)

	text, err := p.resolve(ctx, name)
	if err != nil {
		base := ErrIncludeLoader
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			base = ErrCanceled
		}

		return "", NewError(base, c.Origin(), span).
			WithName(name).
			WithCause(err)
	}

	return text, nil
}

// Include resolves name and runs fn over a new cursor reading the fragment.
// Warnings recorded in the fragment are appended to c in order.
func Include[T any](
	ctx context.Context,
	p *Parser,
	c *Cursor,
	name string,
	span Span,
	fn func(sub *Cursor) (T, error),
) (T, error) {
	var zero T

	if p.depth >= p.maxDepth {
		return zero, NewError(ErrMaxDepthExceeded, c.Origin(), span).
			WithName(name)
	}

	text, err := p.Resolve(ctx, c, name, span)
	if err != nil {
		return zero, err
	}

	p.depth++
	defer func() { p.depth-- }()

	sub := NewCursor(text, Origin{Path: name})

	out, err := fn(sub)
	if err != nil {
		return zero, err
	}

	c.AppendWarnings(sub.Warnings()...)

	return out, nil
}

// ParseRoot parses a whole document whose single top-level element is
// described by e. Whitespace and comments may surround the root element;
// anything else is an error.
func ParseRoot[T Tag, A, C any](
	ctx context.Context,
	p *Parser,
	c *Cursor,
	e Element[T, A, C],
) (*Component[T, A, C], error) {
	var tag T

	name := tag.TagName()

	start, err := skipInsignificant(c, true)
	if err != nil {
		return nil, err
	}

	st, ok := start.(StartToken)
	if !ok {
		return nil, c.Unexpected(start)
	}

	if st.Local != name {
		return nil, NewError(ErrUnexpectedElement, c.Origin(), st.Loc).
			WithName(st.Local, name)
	}

	root, err := e.Parse(ctx, p, c)
	if err != nil {
		return nil, err
	}

	trailing, err := skipInsignificant(c, false)
	if err != nil {
		return nil, err
	}

	if trailing != nil {
		return nil, c.Unexpected(trailing)
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.String("root", name),
		slog.String("origin", c.Origin().String()),
		slog.Int("warnings", len(c.warnings)),
	)

	return root, nil
}

// skipInsignificant discards whitespace-only text and comments and returns
// the next token. At end of input it returns nil, or [ErrEndOfStream] when
// required is set.
func skipInsignificant(c *Cursor, required bool) (Token, error) {
	for {
		next := c.Next
		if required {
			next = c.AssertNext
		}

		tok, err := next()
		if err != nil || tok == nil {
			return nil, err
		}

		switch t := tok.(type) {
		case CommentToken:
			continue
		case TextToken:
			if isBlank(t.Text) {
				continue
			}
		}

		return tok, nil
	}
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
