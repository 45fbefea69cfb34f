// Package vdom defines the virtual DOM tree produced by template expansion.
//
// A tree is built from two node variants: Text, a literal text leaf, and
// ElementNode, which wraps an Element. An Element carries a tag name, an
// attribute map, and an ordered child list. The package is intentionally
// inert: it holds the data types, structural equality, and the binding
// conversion (ToDocument); all expansion logic lives in package template.
package vdom

// Node is a single tree node: either literal text or an element.
type Node interface {
	node()

	// Equal reports structural equality with another node.
	Equal(Node) bool
}

// Equal reports structural equality of two nodes. Two nil nodes are equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Text is a literal text leaf. It has no children.
type Text struct {
	Content string
}

func (Text) node() {}

// Equal reports whether other is a Text node with the same content.
func (t Text) Equal(other Node) bool {
	o, ok := other.(Text)
	return ok && o.Content == t.Content
}

// ElementNode wraps an Element so it can appear in a child list.
type ElementNode struct {
	Element *Element
}

func (ElementNode) node() {}

// Equal reports whether other wraps a structurally equal element.
func (n ElementNode) Equal(other Node) bool {
	o, ok := other.(ElementNode)
	return ok && n.Element.Equal(o.Element)
}

// Element is a named node with an attribute map and ordered children.
// Child order is document order and is semantically significant.
type Element struct {
	Name       string
	Attributes map[string]string
	Children   []Node
}

// NewElement returns an element with the default "div" name, an empty
// attribute map, and no children.
func NewElement() *Element {
	return &Element{Name: "div", Attributes: map[string]string{}}
}

// Equal reports structural equality: same name, same attribute key/value
// set (insertion order irrelevant), and equal children in the same order.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Name != other.Name {
		return false
	}
	if len(e.Attributes) != len(other.Attributes) {
		return false
	}
	for k, v := range e.Attributes {
		if ov, ok := other.Attributes[k]; !ok || ov != v {
			return false
		}
	}
	if len(e.Children) != len(other.Children) {
		return false
	}
	for i, c := range e.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Attr looks up an attribute by key. Returns the value and true if present.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attributes[key]
	return v, ok
}

// Document is an ordered sequence of nodes. It is the result of converting
// a bound value into zero or more nodes for splicing into a parent's
// children; it is not itself a node.
type Document []Node

// Equal reports ordered structural equality of two documents.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
