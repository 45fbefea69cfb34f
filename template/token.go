package template

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdentifier  // [A-Za-z_][A-Za-z0-9_-]*
	TokenClass       // .name (literal holds the class name)
	TokenID          // #name (literal holds the id)
	TokenString      // "..." with escape processing (attribute values)
	TokenInteger     // -?[0-9]+
	TokenFloat       // -?[0-9]+.[0-9]+
	TokenText        // {literal} binding (literal holds the brace body)
	TokenPlaceholder // {} empty binding, consumes the next argument
	TokenChild       // >
	TokenSibling     // +
	TokenLBracket    // [
	TokenRBracket    // ]
	TokenEquals      // =
	TokenLParen      // (
	TokenRParen      // )
)

var tokenNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenIdentifier:  "identifier",
	TokenClass:       "class",
	TokenID:          "id",
	TokenString:      "string",
	TokenInteger:     "integer",
	TokenFloat:       "float",
	TokenText:        "text binding",
	TokenPlaceholder: "placeholder",
	TokenChild:       "'>'",
	TokenSibling:     "'+'",
	TokenLBracket:    "'['",
	TokenRBracket:    "']'",
	TokenEquals:      "'='",
	TokenLParen:      "'('",
	TokenRParen:      "')'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw for others)
	Pos     Position
}
