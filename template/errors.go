package template

import "fmt"

// ParseError is the base error type for all template errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a scanner-level error (unexpected character,
// unterminated string or binding).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token, sibling
// operator at the top level, unmatched group).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, msg)
	}
	return msg
}

// BindError represents a binding conversion error (unconvertible value,
// argument count mismatch, non-text value in attribute position).
type BindError struct{ ParseError }
