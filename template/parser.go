package template

import (
	"fmt"

	"github.com/Arubaruba/virtual-dom/vdom"
)

// Parse parses a template expression and returns its root element.
// Returns a *SyntaxError, *LexError, or *BindError on failure.
//
// Each empty {} binding and each ={} attribute value consumes the next
// value from args, in left-to-right order. Values convert through
// vdom.ToDocument; missing or leftover args fail the parse.
func Parse(src string, args ...any) (*vdom.Element, error) {
	p := &parser{lex: NewLexer([]byte(src)), args: args}
	root := vdom.NewElement()

	// "+" is disallowed at the top level, so no sibling nodes can be
	// returned here.
	if _, err := p.parseSequence(root, topLevel); err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "end of expression",
			Got:        got(tok),
		}
	}
	if p.nextArg < len(p.args) {
		return nil, &BindError{ParseError{
			Message: fmt.Sprintf("%d unused binding argument(s)", len(p.args)-p.nextArg),
		}}
	}
	return root, nil
}

// level distinguishes the top level of an expression from any nested level
// (inside a '>' descent or a group). Its only effect is that the sibling
// operator '+' is rejected at the top level.
type level int

const (
	topLevel level = iota
	nested
)

type parser struct {
	lex     *Lexer
	args    []any
	nextArg int
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        got(tok),
		}
	}
	return tok, nil
}

// parseSequence applies productions to el until the sequence ends, either at
// EOF or at a ')' closing an enclosing group (the ')' is left unconsumed for
// the group's opener). It returns the nodes that follow el as siblings at
// the same nesting level; only '>' and '+' change which element is current.
func (p *parser) parseSequence(el *vdom.Element, lv level) ([]vdom.Node, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenEOF, TokenRParen:
			return nil, nil

		case TokenIdentifier:
			_, _ = p.next()
			el.Name = tok.Literal

		case TokenClass:
			_, _ = p.next()
			if existing, ok := el.Attributes["class"]; ok {
				el.Attributes["class"] = existing + " " + tok.Literal
			} else {
				el.Attributes["class"] = tok.Literal
			}

		case TokenID:
			_, _ = p.next()
			el.Attributes["id"] = tok.Literal

		case TokenLBracket:
			if err := p.parseAttrList(el); err != nil {
				return nil, err
			}

		case TokenText:
			_, _ = p.next()
			el.Children = append(el.Children, vdom.Text{Content: tok.Literal})

		case TokenPlaceholder:
			_, _ = p.next()
			doc, err := p.takeArg(tok.Pos)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, doc...)

		case TokenChild:
			_, _ = p.next()
			return nil, p.parseChild(el)

		case TokenSibling:
			if lv == topLevel {
				return nil, &SyntaxError{
					ParseError: ParseError{
						Message: "sibling operator '+' is not allowed at the top level",
						Pos:     tok.Pos,
					},
					Expected: "template primitive",
					Got:      got(tok),
				}
			}
			_, _ = p.next()
			return p.parseSibling(el)

		case TokenLParen:
			return nil, &SyntaxError{
				ParseError: ParseError{
					Message: "a group may only follow '>' or '+'",
					Pos:     tok.Pos,
				},
				Expected: "template primitive",
				Got:      got(tok),
			}

		default:
			return nil, &SyntaxError{
				ParseError: ParseError{Pos: tok.Pos},
				Expected:   "template primitive",
				Got:        got(tok),
			}
		}
	}
}

// parseChild handles '>' after it has been consumed: a new element becomes
// the sole immediate child of el, the remainder (or the group body) parses
// against it, and any siblings it returns land directly after it in el's
// children. With a group form, tokens after the group continue against el
// itself. The production returns no siblings of its own.
func (p *parser) parseChild(el *vdom.Element) error {
	grouped, err := p.consumeGroupOpen()
	if err != nil {
		return err
	}

	child := vdom.NewElement()
	siblings, err := p.parseSequence(child, nested)
	if err != nil {
		return err
	}
	if grouped {
		if _, err := p.expect(TokenRParen); err != nil {
			return err
		}
	}

	el.Children = append(el.Children, vdom.ElementNode{Element: child})
	el.Children = append(el.Children, siblings...)

	if grouped {
		rest, err := p.parseSequence(el, nested)
		if err != nil {
			return err
		}
		el.Children = append(el.Children, rest...)
	}
	return nil
}

// parseSibling handles '+' after it has been consumed: a new element starts
// at the same nesting level, the remainder (or the group body) parses
// against it, and the result is the new element followed by the siblings
// that recursion returned. With a group form, tokens after the group
// continue against el, the element that was current before the '+'.
func (p *parser) parseSibling(el *vdom.Element) ([]vdom.Node, error) {
	grouped, err := p.consumeGroupOpen()
	if err != nil {
		return nil, err
	}

	sib := vdom.NewElement()
	siblings, err := p.parseSequence(sib, nested)
	if err != nil {
		return nil, err
	}

	out := make([]vdom.Node, 0, 1+len(siblings))
	out = append(out, vdom.ElementNode{Element: sib})
	out = append(out, siblings...)

	if grouped {
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		rest, err := p.parseSequence(el, nested)
		if err != nil {
			return nil, err
		}
		out = append(out, rest...)
	}
	return out, nil
}

func (p *parser) consumeGroupOpen() (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind == TokenLParen {
		_, _ = p.next()
		return true, nil
	}
	return false, nil
}

// parseAttrList parses '[' (key '=' value)* ']' and applies every pair to
// el's attribute map; a later key in the same list wins over an earlier one.
func (p *parser) parseAttrList(el *vdom.Element) error {
	if _, err := p.expect(TokenLBracket); err != nil {
		return err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind == TokenRBracket {
			_, _ = p.next()
			return nil
		}
		if tok.Kind != TokenIdentifier {
			return &SyntaxError{
				ParseError: ParseError{Pos: tok.Pos},
				Expected:   "attribute key or ']'",
				Got:        got(tok),
			}
		}
		_, _ = p.next()

		if _, err := p.expect(TokenEquals); err != nil {
			return err
		}

		val, err := p.parseAttrValue()
		if err != nil {
			return err
		}
		el.Attributes[tok.Literal] = val
	}
}

// parseAttrValue parses one attribute value: a bare identifier, a number, a
// quoted string, a {literal} body, or a {} placeholder whose argument must
// render as text.
func (p *parser) parseAttrValue() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}

	switch tok.Kind {
	case TokenIdentifier, TokenString, TokenInteger, TokenFloat, TokenText:
		return tok.Literal, nil

	case TokenPlaceholder:
		doc, err := p.takeArg(tok.Pos)
		if err != nil {
			return "", err
		}
		if len(doc) == 1 {
			if t, ok := doc[0].(vdom.Text); ok {
				return t.Content, nil
			}
		}
		return "", &BindError{ParseError{
			Message: "attribute value binding must convert to text",
			Pos:     tok.Pos,
		}}

	default:
		return "", &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "attribute value",
			Got:        got(tok),
		}
	}
}

// takeArg consumes the next binding argument and converts it to a Document.
func (p *parser) takeArg(pos Position) (vdom.Document, error) {
	if p.nextArg >= len(p.args) {
		return nil, &BindError{ParseError{
			Message: "no binding argument left for placeholder",
			Pos:     pos,
		}}
	}
	v := p.args[p.nextArg]
	p.nextArg++

	doc, err := vdom.ToDocument(v)
	if err != nil {
		return nil, &BindError{ParseError{
			Message: err.Error(),
			Pos:     pos,
			Cause:   err,
		}}
	}
	return doc, nil
}

func got(tok Token) string {
	return fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
}
