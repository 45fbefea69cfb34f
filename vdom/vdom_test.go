package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElementDefaults(t *testing.T) {
	el := NewElement()
	assert.Equal(t, "div", el.Name)
	assert.Empty(t, el.Attributes)
	assert.Empty(t, el.Children)
}

func TestTextEqual(t *testing.T) {
	assert.True(t, Text{Content: "a"}.Equal(Text{Content: "a"}))
	assert.False(t, Text{Content: "a"}.Equal(Text{Content: "b"}))
	assert.False(t, Text{Content: "a"}.Equal(ElementNode{Element: NewElement()}))
}

func TestElementEqualDefaults(t *testing.T) {
	// A nil attribute map and an empty one compare equal.
	assert.True(t, NewElement().Equal(&Element{Name: "div"}))
}

func TestElementEqualAttributes(t *testing.T) {
	a := &Element{Name: "a", Attributes: map[string]string{"id": "x", "class": "y"}}
	b := &Element{Name: "a", Attributes: map[string]string{"class": "y", "id": "x"}}
	assert.True(t, a.Equal(b))

	b.Attributes["class"] = "z"
	assert.False(t, a.Equal(b))

	c := &Element{Name: "a", Attributes: map[string]string{"id": "x"}}
	assert.False(t, a.Equal(c))
}

func TestElementEqualChildrenOrdered(t *testing.T) {
	a := NewElement()
	a.Children = []Node{Text{Content: "x"}, Text{Content: "y"}}

	b := NewElement()
	b.Children = []Node{Text{Content: "x"}, Text{Content: "y"}}
	assert.True(t, a.Equal(b))

	// Same children, different order: not equal.
	c := NewElement()
	c.Children = []Node{Text{Content: "y"}, Text{Content: "x"}}
	assert.False(t, a.Equal(c))
}

func TestElementEqualNested(t *testing.T) {
	inner := NewElement()
	inner.Name = "span"

	a := NewElement()
	a.Children = []Node{ElementNode{Element: inner}}

	inner2 := NewElement()
	inner2.Name = "span"
	b := NewElement()
	b.Children = []Node{ElementNode{Element: inner2}}

	assert.True(t, a.Equal(b))

	inner2.Name = "p"
	assert.False(t, a.Equal(b))
}

func TestElementEqualNil(t *testing.T) {
	var a *Element
	assert.True(t, a.Equal(nil))
	assert.False(t, a.Equal(NewElement()))
	assert.False(t, NewElement().Equal(nil))
}

func TestElementAttr(t *testing.T) {
	el := NewElement()
	el.Attributes["width"] = "44"

	v, ok := el.Attr("width")
	require.True(t, ok)
	assert.Equal(t, "44", v)

	_, ok = el.Attr("height")
	assert.False(t, ok)
}

func TestNodeEqualHelper(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Text{Content: "x"}, nil))
	assert.True(t, Equal(Text{Content: "x"}, Text{Content: "x"}))
	assert.False(t, Equal(Text{Content: "x"}, ElementNode{Element: NewElement()}))
}

func TestDocumentEqual(t *testing.T) {
	a := Document{Text{Content: "x"}, ElementNode{Element: NewElement()}}
	b := Document{Text{Content: "x"}, ElementNode{Element: NewElement()}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b[:1]))
}
