package mjml

import (
	"context"
	"maps"
	"slices"

	"github.com/ardnew/mjml/parser"
)

// Children tables, populated by init because their entries refer back to
// the tables themselves.
//
//nolint:gochecknoglobals
var (
	bodyChildren   parser.Table[parser.Node]
	headChildren   parser.Table[parser.Node]
	navbarChildren parser.Table[parser.Node]
	socialChildren parser.Table[parser.Node]
)

//nolint:gochecknoinits
func init() {
	bodyChildren = parser.Table[parser.Node]{
		MjButtonTag{}.TagName():  child(content[MjButtonTag]),
		MjColumnTag{}.TagName():  child(container[MjColumnTag]),
		MjDividerTag{}.TagName(): child(leaf[MjDividerTag]),
		MjGroupTag{}.TagName():   child(container[MjGroupTag]),
		MjHeroTag{}.TagName():    child(container[MjHeroTag]),
		MjImageTag{}.TagName():   child(leaf[MjImageTag]),
		MjIncludeTag{}.TagName(): parseBodyInclude,
		MjNavbarTag{}.TagName():  child(navbar),
		MjRawTag{}.TagName():     child(content[MjRawTag]),
		MjSectionTag{}.TagName(): child(container[MjSectionTag]),
		MjSocialTag{}.TagName():  child(social),
		MjSpacerTag{}.TagName():  child(leaf[MjSpacerTag]),
		MjTableTag{}.TagName():   child(content[MjTableTag]),
		MjTextTag{}.TagName():    child(content[MjTextTag]),
		MjWrapperTag{}.TagName(): child(container[MjWrapperTag]),
	}

	headChildren = parser.Table[parser.Node]{
		MjAttributesTag{}.TagName(): child(attributes),
		MjBreakpointTag{}.TagName(): child(breakpoint),
		MjFontTag{}.TagName():       child(font),
		MjIncludeTag{}.TagName():    parseHeadInclude,
		MjPreviewTag{}.TagName():    child(preview),
		MjRawTag{}.TagName():        child(content[MjRawTag]),
		MjStyleTag{}.TagName():      child(style),
		MjTitleTag{}.TagName():      child(title),
	}

	navbarChildren = parser.Table[parser.Node]{
		MjNavbarLinkTag{}.TagName(): child(content[MjNavbarLinkTag]),
	}

	socialChildren = parser.Table[parser.Node]{
		MjSocialElementTag{}.TagName(): child(content[MjSocialElementTag]),
	}
}

// BodyChildren returns the names of the elements accepted inside mj-body and
// the body containers, sorted.
func BodyChildren() []string { return bodyChildren.Names() }

// HeadChildren returns the names of the elements accepted inside mj-head,
// sorted.
func HeadChildren() []string { return headChildren.Names() }

func tagName[T parser.Tag]() string {
	var tag T

	return tag.TagName()
}

// child adapts an element descriptor to a children table entry.
func child[T parser.Tag, A, C any](
	desc func() parser.Element[T, A, C],
) parser.ChildParser[parser.Node] {
	return func(
		ctx context.Context,
		p *parser.Parser,
		c *parser.Cursor,
		_ parser.StartToken,
	) (parser.Node, error) {
		n, err := desc().Parse(ctx, p, c)
		if err != nil {
			return nil, err
		}

		return n, nil
	}
}

// fields returns an attribute parser for a fixed attribute set. Each known
// name maps to the function storing its value in the record; any other name
// is reported with [parser.WarningUnexpectedAttribute].
func fields[A any](known map[string]func(*A, *string)) parser.AttributesParser[A] {
	names := slices.Sorted(maps.Keys(known))

	return func(c *parser.Cursor) (A, error) {
		var attrs A

		for {
			tok, err := c.NextAttribute()
			if err != nil || tok == nil {
				return attrs, err
			}

			if set, ok := known[tok.Local]; ok {
				set(&attrs, tok.Value)
			} else {
				parser.WarnUnknownAttribute(c, tok, names...)
			}
		}
	}
}

// container describes a layout element holding body children.
func container[T parser.Tag]() parser.Element[T, parser.AttributeMap, []parser.Node] {
	return parser.Element[T, parser.AttributeMap, []parser.Node]{
		Attributes: parser.ParseAttributeMap,
		Children: parser.Sequence(tagName[T](), bodyChildren,
			parser.ContentComments, nil, newComment),
	}
}

// content describes an element whose children are raw HTML.
func content[T parser.Tag]() parser.Element[T, parser.AttributeMap, []parser.Node] {
	return parser.Element[T, parser.AttributeMap, []parser.Node]{
		Attributes: parser.ParseAttributeMap,
		Children:   rawContent(tagName[T]()),
	}
}

// leaf describes an element with open attributes and no children.
func leaf[T parser.Tag]() parser.Element[T, parser.AttributeMap, struct{}] {
	return parser.Element[T, parser.AttributeMap, struct{}]{
		Attributes: parser.ParseAttributeMap,
	}
}
