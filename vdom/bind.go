package vdom

import (
	"fmt"
	"strconv"
)

// DocumentProvider is the binding capability: a value that can present
// itself as a sequence of nodes. Bound values implementing it are spliced
// into the parent's children as-is; everything else goes through text
// conversion in ToDocument.
type DocumentProvider interface {
	ToDocument() Document
}

// ToDocument returns the document itself.
func (d Document) ToDocument() Document { return d }

// ToDocument returns a one-node document holding the text.
func (t Text) ToDocument() Document { return Document{t} }

// ToDocument returns a one-node document holding the element node.
func (n ElementNode) ToDocument() Document { return Document{n} }

// ToDocument returns a one-node document holding the element. This is the
// opt-in path for splicing an already-built subtree into a binding.
func (e *Element) ToDocument() Document {
	return Document{ElementNode{Element: e}}
}

// ToDocument converts a bindable value into a Document. Values implementing
// DocumentProvider supply their own nodes. Text-like values (strings,
// booleans, integers, floats, fmt.Stringer) become a document with exactly
// one Text node holding their rendered text. Any other value is a
// conversion error.
func ToDocument(v any) (Document, error) {
	switch x := v.(type) {
	case DocumentProvider:
		return x.ToDocument(), nil
	case string:
		return textDocument(x), nil
	case bool:
		return textDocument(strconv.FormatBool(x)), nil
	case int:
		return textDocument(strconv.FormatInt(int64(x), 10)), nil
	case int8:
		return textDocument(strconv.FormatInt(int64(x), 10)), nil
	case int16:
		return textDocument(strconv.FormatInt(int64(x), 10)), nil
	case int32:
		return textDocument(strconv.FormatInt(int64(x), 10)), nil
	case int64:
		return textDocument(strconv.FormatInt(x, 10)), nil
	case uint:
		return textDocument(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return textDocument(strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return textDocument(strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return textDocument(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return textDocument(strconv.FormatUint(x, 10)), nil
	case float32:
		return textDocument(strconv.FormatFloat(float64(x), 'g', -1, 32)), nil
	case float64:
		return textDocument(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case fmt.Stringer:
		return textDocument(x.String()), nil
	default:
		return nil, fmt.Errorf("vdom: cannot convert %T to a document", v)
	}
}

func textDocument(s string) Document {
	return Document{Text{Content: s}}
}
