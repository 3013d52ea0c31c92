package mjml

import (
	"context"

	"github.com/ardnew/mjml/parser"
)

// MjmlTag is the tag of the document root.
type MjmlTag struct{}

func (MjmlTag) TagName() string { return "mjml" }

// RootAttributes are the attributes of the mjml root element.
// A nil field is an attribute that was absent or written without a value.
type RootAttributes struct {
	Owa  *string
	Lang *string
	Dir  *string
}

// RootChildren are the two fixed slots of the root element.
type RootChildren struct {
	Head *MjHead
	Body *MjBody
}

// Mjml is a parsed document.
type Mjml = parser.Component[MjmlTag, RootAttributes, RootChildren]

//nolint:gochecknoglobals
var parseRootAttributes = fields(map[string]func(*RootAttributes, *string){
	"dir":  func(a *RootAttributes, v *string) { a.Dir = v },
	"lang": func(a *RootAttributes, v *string) { a.Lang = v },
	"owa":  func(a *RootAttributes, v *string) { a.Owa = v },
})

func root() parser.Element[MjmlTag, RootAttributes, RootChildren] {
	return parser.Element[MjmlTag, RootAttributes, RootChildren]{
		Attributes: parseRootAttributes,
		Children:   parseRootChildren,
	}
}

// parseRootChildren fills the head and body slots. A repeated slot keeps
// the later element and records [parser.WarningDuplicateElement].
func parseRootChildren(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
) (RootChildren, error) {
	var out RootChildren

	headName, bodyName := tagName[MjHeadTag](), tagName[MjBodyTag]()

	err := parser.Walk(c, tagName[MjmlTag](), parser.ContentNone,
		func(tok parser.Token) error {
			start, ok := tok.(parser.StartToken)
			if !ok {
				return c.Unexpected(tok)
			}

			var err error

			switch start.Local {
			case headName:
				if out.Head != nil {
					c.AddWarning(parser.WarningDuplicateElement, start.Loc,
						parser.WarnName(start.Local))
				}

				out.Head, err = head().Parse(ctx, p, c)

			case bodyName:
				if out.Body != nil {
					c.AddWarning(parser.WarningDuplicateElement, start.Loc,
						parser.WarnName(start.Local))
				}

				out.Body, err = body().Parse(ctx, p, c)

			default:
				err = parser.NewError(parser.ErrUnexpectedElement, c.Origin(), start.Loc).
					WithName(start.Local, bodyName, headName)
			}

			return err
		})
	if err != nil {
		return RootChildren{}, err
	}

	return out, nil
}

// Parse parses a document without include support beyond the default
// options.
func Parse(text string) (parser.Output[*Mjml], error) {
	return ParseWithOptions(text, parser.DefaultOptions())
}

// ParseWithOptions parses a document, resolving mj-include elements through
// opts.IncludeLoader.
func ParseWithOptions(text string, opts parser.Options) (parser.Output[*Mjml], error) {
	return parse(context.Background(), parser.NewParser(opts), text)
}

// ParseContext parses a document with the default asynchronous options.
func ParseContext(ctx context.Context, text string) (parser.Output[*Mjml], error) {
	return ParseContextWithOptions(ctx, text, parser.DefaultAsyncOptions())
}

// ParseContextWithOptions parses a document, resolving mj-include elements
// through opts.IncludeLoader. Cancellation of ctx is observed whenever an
// include is about to be resolved.
func ParseContextWithOptions(
	ctx context.Context,
	text string,
	opts parser.AsyncOptions,
) (parser.Output[*Mjml], error) {
	return parse(ctx, parser.NewAsyncParser(opts), text)
}

func parse(ctx context.Context, p *parser.Parser, text string) (parser.Output[*Mjml], error) {
	c := parser.NewCursor(text, parser.Origin{})

	doc, err := parser.ParseRoot(ctx, p, c, root())
	if err != nil {
		return parser.Output[*Mjml]{}, err
	}

	return parser.Output[*Mjml]{Element: doc, Warnings: c.Warnings()}, nil
}
