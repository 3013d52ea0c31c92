// Package mjml parses MJML email templates into typed element trees.
//
// Every element kind is a [parser.Component] instantiated with a marker tag
// type, an attribute representation and a children representation, so the
// tag of a parsed element is fixed by its Go type:
//
//	doc, err := mjml.Parse(`<mjml lang="fr"><mj-body/></mjml>`)
//	if err != nil {
//		return err
//	}
//	fmt.Println(*doc.Element.Attributes.Lang) // fr
//
// Kinds whose attributes are consumed by a renderer keep them in an ordered
// [parser.AttributeMap]. Kinds with a fixed attribute set use a typed record
// and report anything else as [parser.WarningUnexpectedAttribute].
//
// Children are typed slots (the root's [RootChildren]), ordered slices of
// [parser.Node] (layout and content elements), or verbatim text
// (mj-title, mj-preview, mj-style).
//
// # Includes
//
// An mj-include element stays in the tree as an [*MjInclude] whose children
// are the elements of the resolved fragment.
// Fragments are loaded with the loader in [parser.Options] or
// [parser.AsyncOptions]; diagnostics inside a fragment carry its path as
// their [parser.Origin].
package mjml
