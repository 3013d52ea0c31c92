package mjml

import (
	"context"

	"github.com/ardnew/mjml/parser"
)

// Text is character data inside a content element.
type Text string

// Tag returns "#text".
func (Text) Tag() string { return "#text" }

// Comment is an HTML comment, without its delimiters.
type Comment string

// Tag returns "#comment".
func (Comment) Tag() string { return "#comment" }

// Node is an arbitrary HTML element appearing inside a content element such
// as mj-text or mj-raw.
type Node struct {
	Name       string
	Attributes parser.AttributeMap
	Children   []parser.Node
}

// Tag returns the element name.
func (n *Node) Tag() string { return n.Name }

// voidElements close at their opening tag.
//
//nolint:gochecknoglobals
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

// IsVoidElement reports whether the HTML element name never has content.
func IsVoidElement(name string) bool {
	_, ok := voidElements[name]

	return ok
}

func newComment(tok parser.CommentToken) parser.Node { return Comment(tok.Text) }

func newText(tok parser.TextToken) parser.Node { return Text(tok.Text) }

// rawContent parses HTML content up to the closing tag named close. All
// text, including whitespace, is significant.
func rawContent(close string) parser.ChildrenParser[[]parser.Node] {
	return func(
		ctx context.Context,
		p *parser.Parser,
		c *parser.Cursor,
	) ([]parser.Node, error) {
		var out []parser.Node

		err := parser.Walk(c, close, parser.ContentText|parser.ContentComments,
			func(tok parser.Token) error {
				switch t := tok.(type) {
				case parser.StartToken:
					n, err := parseNode(ctx, p, c, t)
					if err != nil {
						return err
					}

					out = append(out, n)

				case parser.TextToken:
					out = append(out, newText(t))

				case parser.CommentToken:
					out = append(out, newComment(t))

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

func parseNode(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
	start parser.StartToken,
) (*Node, error) {
	attrs, err := parser.ParseAttributeMap(c)
	if err != nil {
		return nil, err
	}

	end, err := c.AssertElementEnd()
	if err != nil {
		return nil, err
	}

	n := &Node{Name: start.Local, Attributes: attrs}

	if end.Empty || IsVoidElement(start.Local) {
		return n, nil
	}

	if n.Children, err = rawContent(start.Local)(ctx, p, c); err != nil {
		return nil, err
	}

	closing, err := c.AssertElementClose()
	if err != nil {
		return nil, err
	}

	if closing.Local != start.Local {
		return nil, c.Unexpected(closing)
	}

	return n, nil
}
