package parser

import "iter"

// Tag is implemented by the zero-size marker types that identify an element
// kind. The marker is a type parameter of [Component], so a component's tag
// is fixed by its type.
type Tag interface {
	TagName() string
}

// Node is anything that can appear in a children sequence.
type Node interface {
	Tag() string
}

// Component is the generic representation of one parsed element.
//
// Attributes is an [AttributeMap] for kinds with an open attribute set or a
// typed record for kinds with fixed attributes. Children is a typed record
// of named slots, an ordered slice of nodes, or text content.
type Component[T Tag, A, C any] struct {
	Attributes A
	Children   C
}

// Tag returns the element name identified by T.
func (Component[T, A, C]) Tag() string {
	var tag T

	return tag.TagName()
}

// Attribute is one name/value pair. A nil Value is an attribute written
// without a value.
type Attribute struct {
	Name  string
	Value *string
}

// AttributeMap is an insertion-ordered attribute mapping.
type AttributeMap []Attribute

// Get returns the value of name and whether it is present.
func (m AttributeMap) Get(name string) (*string, bool) {
	for _, a := range m {
		if a.Name == name {
			return a.Value, true
		}
	}

	return nil, false
}

// Lookup returns the value of name, or "" if it is absent or has no value.
func (m AttributeMap) Lookup(name string) string {
	if v, ok := m.Get(name); ok && v != nil {
		return *v
	}

	return ""
}

// Has reports whether name is present.
func (m AttributeMap) Has(name string) bool {
	_, ok := m.Get(name)

	return ok
}

// Len returns the number of attributes.
func (m AttributeMap) Len() int { return len(m) }

// Set assigns value to name. An existing attribute keeps its position and
// takes the new value.
func (m *AttributeMap) Set(name string, value *string) {
	for i := range *m {
		if (*m)[i].Name == name {
			(*m)[i].Value = value

			return
		}
	}

	*m = append(*m, Attribute{Name: name, Value: value})
}

// All returns an iterator over the attributes in insertion order.
func (m AttributeMap) All() iter.Seq2[string, *string] {
	return func(yield func(string, *string) bool) {
		for _, a := range m {
			if !yield(a.Name, a.Value) {
				return
			}
		}
	}
}
