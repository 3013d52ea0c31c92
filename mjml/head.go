package mjml

import (
	"context"

	"github.com/ardnew/mjml/parser"
)

// Head element tags.
type (
	MjHeadTag       struct{}
	MjAttributesTag struct{}
	MjAllTag        struct{}
	MjClassTag      struct{}
	MjBreakpointTag struct{}
	MjFontTag       struct{}
	MjPreviewTag    struct{}
	MjStyleTag      struct{}
	MjTitleTag      struct{}
)

func (MjHeadTag) TagName() string       { return "mj-head" }
func (MjAttributesTag) TagName() string { return "mj-attributes" }
func (MjAllTag) TagName() string        { return "mj-all" }
func (MjClassTag) TagName() string      { return "mj-class" }
func (MjBreakpointTag) TagName() string { return "mj-breakpoint" }
func (MjFontTag) TagName() string       { return "mj-font" }
func (MjPreviewTag) TagName() string    { return "mj-preview" }
func (MjStyleTag) TagName() string      { return "mj-style" }
func (MjTitleTag) TagName() string      { return "mj-title" }

// MjHead holds head elements and comments.
type MjHead = parser.Component[MjHeadTag, struct{}, []parser.Node]

// MjTitle and MjPreview hold their text content verbatim.
type (
	MjTitle   = parser.Component[MjTitleTag, struct{}, string]
	MjPreview = parser.Component[MjPreviewTag, struct{}, string]
)

// StyleAttributes are the attributes of mj-style.
type StyleAttributes struct {
	Inline *string
}

// MjStyle holds a style sheet verbatim.
type MjStyle = parser.Component[MjStyleTag, StyleAttributes, string]

// FontAttributes are the attributes of mj-font.
type FontAttributes struct {
	Name *string
	Href *string
}

// MjFont declares a web font.
type MjFont = parser.Component[MjFontTag, FontAttributes, struct{}]

// BreakpointAttributes are the attributes of mj-breakpoint.
type BreakpointAttributes struct {
	Width *string
}

// MjBreakpoint sets the responsive breakpoint.
type MjBreakpoint = parser.Component[MjBreakpointTag, BreakpointAttributes, struct{}]

// MjAttributes holds default attribute declarations: [*MjAll],
// [*MjClass], [*MjElementDefaults] and comments.
type MjAttributes = parser.Component[MjAttributesTag, struct{}, []parser.Node]

// MjAll declares defaults for every element.
type MjAll = parser.Component[MjAllTag, parser.AttributeMap, struct{}]

// MjClass declares a named attribute class; its "name" attribute is kept in
// the map alongside the class attributes.
type MjClass = parser.Component[MjClassTag, parser.AttributeMap, struct{}]

// MjElementDefaults declares defaults for the element called Name.
type MjElementDefaults struct {
	Name       string
	Attributes parser.AttributeMap
}

// Tag returns the element name the defaults apply to.
func (d *MjElementDefaults) Tag() string { return d.Name }

//nolint:gochecknoglobals
var (
	parseStyleAttributes = fields(map[string]func(*StyleAttributes, *string){
		"inline": func(a *StyleAttributes, v *string) { a.Inline = v },
	})
	parseFontAttributes = fields(map[string]func(*FontAttributes, *string){
		"href": func(a *FontAttributes, v *string) { a.Href = v },
		"name": func(a *FontAttributes, v *string) { a.Name = v },
	})
	parseBreakpointAttributes = fields(map[string]func(*BreakpointAttributes, *string){
		"width": func(a *BreakpointAttributes, v *string) { a.Width = v },
	})
)

func head() parser.Element[MjHeadTag, struct{}, []parser.Node] {
	return parser.Element[MjHeadTag, struct{}, []parser.Node]{
		Children: parser.Sequence(tagName[MjHeadTag](), headChildren,
			parser.ContentComments, nil, newComment),
	}
}

func title() parser.Element[MjTitleTag, struct{}, string] {
	return parser.Element[MjTitleTag, struct{}, string]{
		Children: parser.Text(tagName[MjTitleTag]()),
	}
}

func preview() parser.Element[MjPreviewTag, struct{}, string] {
	return parser.Element[MjPreviewTag, struct{}, string]{
		Children: parser.Text(tagName[MjPreviewTag]()),
	}
}

func style() parser.Element[MjStyleTag, StyleAttributes, string] {
	return parser.Element[MjStyleTag, StyleAttributes, string]{
		Attributes: parseStyleAttributes,
		Children:   parser.Text(tagName[MjStyleTag]()),
	}
}

func font() parser.Element[MjFontTag, FontAttributes, struct{}] {
	return parser.Element[MjFontTag, FontAttributes, struct{}]{
		Attributes: parseFontAttributes,
	}
}

func breakpoint() parser.Element[MjBreakpointTag, BreakpointAttributes, struct{}] {
	return parser.Element[MjBreakpointTag, BreakpointAttributes, struct{}]{
		Attributes: parseBreakpointAttributes,
	}
}

func attributes() parser.Element[MjAttributesTag, struct{}, []parser.Node] {
	return parser.Element[MjAttributesTag, struct{}, []parser.Node]{
		Children: parseAttributesChildren,
	}
}

func parseAttributesChildren(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
) ([]parser.Node, error) {
	var out []parser.Node

	err := parser.Walk(c, tagName[MjAttributesTag](), parser.ContentComments,
		func(tok parser.Token) error {
			switch t := tok.(type) {
			case parser.StartToken:
				n, err := parseDefaults(ctx, p, c, t)
				if err != nil {
					return err
				}

				out = append(out, n)

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

func parseDefaults(
	ctx context.Context,
	p *parser.Parser,
	c *parser.Cursor,
	start parser.StartToken,
) (parser.Node, error) {
	switch start.Local {
	case tagName[MjAllTag]():
		return child(leaf[MjAllTag])(ctx, p, c, start)
	case tagName[MjClassTag]():
		return child(leaf[MjClassTag])(ctx, p, c, start)
	}

	attrs, err := parser.ParseAttributeMap(c)
	if err != nil {
		return nil, err
	}

	end, err := c.AssertElementEnd()
	if err != nil {
		return nil, err
	}

	if !end.Empty {
		if _, err := parser.Empty[struct{}](start.Local)(ctx, p, c); err != nil {
			return nil, err
		}

		closing, err := c.AssertElementClose()
		if err != nil {
			return nil, err
		}

		if closing.Local != start.Local {
			return nil, c.Unexpected(closing)
		}
	}

	return &MjElementDefaults{Name: start.Local, Attributes: attrs}, nil
}
