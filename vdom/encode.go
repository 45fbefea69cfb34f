package vdom

import "encoding/json"

// JSON encoding for downstream serializers and tooling. Text nodes encode
// as {"text": ...}; elements as {"name", "attributes", "children"}.
// Decoding is deliberately absent: the engine only produces trees.

// MarshalJSON encodes the text node.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"text"`
	}{Text: t.Content})
}

// MarshalJSON encodes the wrapped element.
func (n ElementNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Element)
}

// MarshalJSON encodes the element with its attributes and children.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name       string            `json:"name"`
		Attributes map[string]string `json:"attributes,omitempty"`
		Children   []Node            `json:"children,omitempty"`
	}{
		Name:       e.Name,
		Attributes: e.Attributes,
		Children:   e.Children,
	})
}
