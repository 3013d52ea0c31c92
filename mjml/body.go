package mjml

import "github.com/ardnew/mjml/parser"

// Body element tags.
type (
	MjBodyTag          struct{}
	MjButtonTag        struct{}
	MjColumnTag        struct{}
	MjDividerTag       struct{}
	MjGroupTag         struct{}
	MjHeroTag          struct{}
	MjImageTag         struct{}
	MjNavbarTag        struct{}
	MjNavbarLinkTag    struct{}
	MjRawTag           struct{}
	MjSectionTag       struct{}
	MjSocialTag        struct{}
	MjSocialElementTag struct{}
	MjSpacerTag        struct{}
	MjTableTag         struct{}
	MjTextTag          struct{}
	MjWrapperTag       struct{}
)

func (MjBodyTag) TagName() string          { return "mj-body" }
func (MjButtonTag) TagName() string        { return "mj-button" }
func (MjColumnTag) TagName() string        { return "mj-column" }
func (MjDividerTag) TagName() string       { return "mj-divider" }
func (MjGroupTag) TagName() string         { return "mj-group" }
func (MjHeroTag) TagName() string          { return "mj-hero" }
func (MjImageTag) TagName() string         { return "mj-image" }
func (MjNavbarTag) TagName() string        { return "mj-navbar" }
func (MjNavbarLinkTag) TagName() string    { return "mj-navbar-link" }
func (MjRawTag) TagName() string           { return "mj-raw" }
func (MjSectionTag) TagName() string       { return "mj-section" }
func (MjSocialTag) TagName() string        { return "mj-social" }
func (MjSocialElementTag) TagName() string { return "mj-social-element" }
func (MjSpacerTag) TagName() string        { return "mj-spacer" }
func (MjTableTag) TagName() string         { return "mj-table" }
func (MjTextTag) TagName() string          { return "mj-text" }
func (MjWrapperTag) TagName() string       { return "mj-wrapper" }

// Layout elements. Their children are body elements and comments; the
// attributes are kept as written for the renderer.
type (
	MjBody    = parser.Component[MjBodyTag, parser.AttributeMap, []parser.Node]
	MjColumn  = parser.Component[MjColumnTag, parser.AttributeMap, []parser.Node]
	MjGroup   = parser.Component[MjGroupTag, parser.AttributeMap, []parser.Node]
	MjHero    = parser.Component[MjHeroTag, parser.AttributeMap, []parser.Node]
	MjSection = parser.Component[MjSectionTag, parser.AttributeMap, []parser.Node]
	MjWrapper = parser.Component[MjWrapperTag, parser.AttributeMap, []parser.Node]
)

// Content elements. Their children are raw HTML: [Text], [Comment] and
// [*Node] values, with all whitespace preserved.
type (
	MjButton        = parser.Component[MjButtonTag, parser.AttributeMap, []parser.Node]
	MjNavbarLink    = parser.Component[MjNavbarLinkTag, parser.AttributeMap, []parser.Node]
	MjRaw           = parser.Component[MjRawTag, parser.AttributeMap, []parser.Node]
	MjSocialElement = parser.Component[MjSocialElementTag, parser.AttributeMap, []parser.Node]
	MjTable         = parser.Component[MjTableTag, parser.AttributeMap, []parser.Node]
	MjText          = parser.Component[MjTextTag, parser.AttributeMap, []parser.Node]
)

// Leaf elements.
type (
	MjDivider = parser.Component[MjDividerTag, parser.AttributeMap, struct{}]
	MjImage   = parser.Component[MjImageTag, parser.AttributeMap, struct{}]
	MjSpacer  = parser.Component[MjSpacerTag, parser.AttributeMap, struct{}]
)

// MjNavbar holds [*MjNavbarLink] children and comments.
type MjNavbar = parser.Component[MjNavbarTag, parser.AttributeMap, []parser.Node]

// MjSocial holds [*MjSocialElement] children and comments.
type MjSocial = parser.Component[MjSocialTag, parser.AttributeMap, []parser.Node]

func body() parser.Element[MjBodyTag, parser.AttributeMap, []parser.Node] {
	return container[MjBodyTag]()
}

func navbar() parser.Element[MjNavbarTag, parser.AttributeMap, []parser.Node] {
	return parser.Element[MjNavbarTag, parser.AttributeMap, []parser.Node]{
		Attributes: parser.ParseAttributeMap,
		Children: parser.Sequence(tagName[MjNavbarTag](), navbarChildren,
			parser.ContentComments, nil, newComment),
	}
}

func social() parser.Element[MjSocialTag, parser.AttributeMap, []parser.Node] {
	return parser.Element[MjSocialTag, parser.AttributeMap, []parser.Node]{
		Attributes: parser.ParseAttributeMap,
		Children: parser.Sequence(tagName[MjSocialTag](), socialChildren,
			parser.ContentComments, nil, newComment),
	}
}
