package vdom

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocumentString(t *testing.T) {
	doc, err := ToDocument("some inner text")
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, Text{Content: "some inner text"}, doc[0])
}

func TestToDocumentNumbers(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{4, "4"},
		{int64(-7), "-7"},
		{uint8(255), "255"},
		{3.5, "3.5"},
		{float32(0.25), "0.25"},
	}
	for _, tt := range tests {
		doc, err := ToDocument(tt.value)
		require.NoError(t, err, "value: %v", tt.value)
		require.Len(t, doc, 1, "value: %v", tt.value)
		assert.Equal(t, Text{Content: tt.want}, doc[0], "value: %v", tt.value)
	}
}

func TestToDocumentBool(t *testing.T) {
	doc, err := ToDocument(true)
	require.NoError(t, err)
	assert.Equal(t, Document{Text{Content: "true"}}, doc)
}

func TestToDocumentStringer(t *testing.T) {
	ip := net.IPv4(127, 0, 0, 1)
	doc, err := ToDocument(ip)
	require.NoError(t, err)
	assert.Equal(t, Document{Text{Content: "127.0.0.1"}}, doc)
}

func TestToDocumentProvider(t *testing.T) {
	el := NewElement()
	el.Name = "span"

	doc, err := ToDocument(el)
	require.NoError(t, err)
	require.Len(t, doc, 1)

	node, ok := doc[0].(ElementNode)
	require.True(t, ok)
	assert.Same(t, el, node.Element)
}

func TestToDocumentPassesDocumentThrough(t *testing.T) {
	orig := Document{Text{Content: "a"}, Text{Content: "b"}}
	doc, err := ToDocument(orig)
	require.NoError(t, err)
	assert.True(t, orig.Equal(doc))
}

func TestToDocumentUnsupported(t *testing.T) {
	_, err := ToDocument(struct{ X int }{X: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot convert")

	_, err = ToDocument(nil)
	assert.Error(t, err)
}
