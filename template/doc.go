// Package template implements the Emmet-style abbreviation notation that
// expands into a virtual DOM tree.
//
// An expression describes one root element and its subtree in a single
// dense string: a bare identifier names the current element, '.name' adds a
// class, '#name' sets the id, '[key=value ...]' assigns attributes, '{...}'
// binds content, '>' descends into a new child, '+' chains a sibling (legal
// only below the top level), and parentheses group a self-contained subtree
// after '>' or '+'. Expansion is a hand-rolled recursive-descent pass with
// two layers:
//
//   - Lexer: converts the expression into a token stream.
//   - Parser: applies productions left to right against a current element,
//     building a vdom.Element tree.
//
// Usage:
//
//	el, err := template.Parse("div#main>span.label{count: }{}", 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(el.Name, len(el.Children))
//
// A parse either returns a complete tree or fails with a *LexError,
// *SyntaxError, or *BindError carrying the offending position; there is no
// partial recovery. Parse holds no state across invocations, so concurrent
// parses need no coordination.
package template
