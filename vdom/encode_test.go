package vdom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalText(t *testing.T) {
	out, err := json.Marshal(Text{Content: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, string(out))
}

func TestMarshalElement(t *testing.T) {
	el := NewElement()
	el.Name = "a"
	el.Attributes["id"] = "main"
	el.Children = []Node{
		Text{Content: "x"},
		ElementNode{Element: NewElement()},
	}

	out, err := json.Marshal(el)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "a",
		"attributes": {"id": "main"},
		"children": [
			{"text": "x"},
			{"name": "div"}
		]
	}`, string(out))
}

func TestMarshalEmptyElementOmitsEmptyFields(t *testing.T) {
	out, err := json.Marshal(NewElement())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"div"}`, string(out))
}
