package mjml

import (
	"context"
	"strings"

	"github.com/ardnew/mjml/parser"
)

// MjIncludeTag is the tag of mj-include.
type MjIncludeTag struct{}

func (MjIncludeTag) TagName() string { return "mj-include" }

// IncludeType selects how an included fragment is interpreted.
type IncludeType string

const (
	// IncludeMJML parses the fragment as MJML, either a whole document or a
	// bare sequence of elements.
	IncludeMJML IncludeType = "mjml"
	// IncludeHTML keeps the fragment verbatim as an mj-raw element.
	IncludeHTML IncludeType = "html"
	// IncludeCSS keeps the fragment verbatim as an mj-style element in the
	// head. In the body it behaves like [IncludeHTML].
	IncludeCSS IncludeType = "css"
)

// IncludeAttributes are the attributes of mj-include.
type IncludeAttributes struct {
	Path      string
	Type      IncludeType
	CSSInline *string
}

// MjInclude is an mj-include element together with the elements its
// fragment expanded to.
type MjInclude = parser.Component[MjIncludeTag, IncludeAttributes, []parser.Node]

//nolint:gochecknoglobals
var parseIncludeAttributes = fields(map[string]func(*IncludeAttributes, *string){
	"css-inline": func(a *IncludeAttributes, v *string) { a.CSSInline = v },
	"path": func(a *IncludeAttributes, v *string) {
		if v != nil {
			a.Path = *v
		}
	},
	"type": func(a *IncludeAttributes, v *string) {
		switch t := IncludeType(deref(v)); t {
		case IncludeHTML, IncludeCSS:
			a.Type = t
		default:
			a.Type = IncludeMJML
		}
	},
})

func include() parser.Element[MjIncludeTag, IncludeAttributes, struct{}] {
	return parser.Element[MjIncludeTag, IncludeAttributes, struct{}]{
		Attributes: parseIncludeAttributes,
	}
}

func parseBodyInclude(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
	start parser.StartToken,
) (parser.Node, error) {
	return parseInclude(ctx, p, c, start,
		func(sub *parser.Cursor, attrs IncludeAttributes) ([]parser.Node, error) {
			if attrs.Type != IncludeMJML {
				return []parser.Node{rawFragment(sub.Source())}, nil
			}

			if isDocument(sub.Source()) {
				doc, err := parser.ParseRoot(ctx, p, sub, root())
				if err != nil || doc.Children.Body == nil {
					return nil, err
				}

				return doc.Children.Body.Children, nil
			}

			return parser.Sequence("", bodyChildren,
				parser.ContentComments, nil, newComment)(ctx, p, sub)
		})
}

func parseHeadInclude(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
	start parser.StartToken,
) (parser.Node, error) {
	return parseInclude(ctx, p, c, start,
		func(sub *parser.Cursor, attrs IncludeAttributes) ([]parser.Node, error) {
			switch attrs.Type {
			case IncludeHTML:
				return []parser.Node{rawFragment(sub.Source())}, nil
			case IncludeCSS:
				s := &MjStyle{Children: sub.Source()}
				if deref(attrs.CSSInline) == "inline" {
					s.Attributes.Inline = attrs.CSSInline
				}

				return []parser.Node{s}, nil
			}

			if isDocument(sub.Source()) {
				doc, err := parser.ParseRoot(ctx, p, sub, root())
				if err != nil || doc.Children.Head == nil {
					return nil, err
				}

				return doc.Children.Head.Children, nil
			}

			return parser.Sequence("", headChildren,
				parser.ContentComments, nil, newComment)(ctx, p, sub)
		})
}

// parseInclude parses the mj-include element itself, then resolves its
// fragment and expands it with fn.
func parseInclude(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
	start parser.StartToken,
	fn func(sub *parser.Cursor, attrs IncludeAttributes) ([]parser.Node, error),
) (parser.Node, error) {
	shell, err := include().Parse(ctx, p, c)
	if err != nil {
		return nil, err
	}

	attrs := shell.Attributes
	if attrs.Type == "" {
		attrs.Type = IncludeMJML
	}

	if attrs.Path == "" {
		return nil, parser.NewError(parser.ErrMissingAttribute, c.Origin(), start.Loc).
			WithName("path")
	}

	children, err := parser.Include(ctx, p, c, attrs.Path, start.Loc,
		func(sub *parser.Cursor) ([]parser.Node, error) {
			return fn(sub, attrs)
		})
	if err != nil {
		return nil, err
	}

	return &MjInclude{Attributes: attrs, Children: children}, nil
}

func rawFragment(text string) *MjRaw {
	return &MjRaw{Children: []parser.Node{Text(text)}}
}

// isDocument reports whether a fragment is a complete mjml document rather
// than a bare element sequence.
func isDocument(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<"+tagName[MjmlTag]())
}

func deref(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}
