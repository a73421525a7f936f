package token

import "fmt"

// Type is the kind of a token. Keyword kinds are the upper-case spelling of
// the keyword; punctuation kinds are the operator's canonical spelling.
type Type string

// Location is the position of the first byte of a token.
type Location struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string // exact source text; empty for EOF
	Location
	Value Value
}

const (
	// Special tokens
	EOF Type = "EOF"

	// Literals
	IDENT  Type = "IDENT"  // users, _tmp1
	INT    Type = "INT"    // 12345
	FLOAT  Type = "FLOAT"  // 1.5e-3
	STRING Type = "STRING" // 'it''s'
	PARAM  Type = "PARAM"  // $1

	// Punctuation
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	COMMA     Type = ","
	SEMICOLON Type = ";"
	DOT       Type = "."
	COLON     Type = ":"
	TYPECAST  Type = "::"

	// Operators
	PLUS              Type = "+"
	MINUS             Type = "-"
	MULTIPLY          Type = "*"
	DIVIDE            Type = "/"
	MODULO            Type = "%"
	POWER             Type = "^"
	LT                Type = "<"
	LE                Type = "<="
	GT                Type = ">"
	GE                Type = ">="
	EQ                Type = "="
	NE                Type = "<>" // <> or !=
	CONCAT            Type = "||"
	LSHIFT            Type = "<<"
	RSHIFT            Type = ">>"
	BITAND            Type = "&"
	BITOR             Type = "|"
	BITXOR            Type = "#"
	REGEX_MATCH       Type = "~"
	REGEX_IMATCH      Type = "~*"
	REGEX_NMATCH      Type = "!~"
	REGEX_INMATCH     Type = "!~*"
	JSON_EXTRACT      Type = "->"
	JSON_EXTRACT_TEXT Type = "->>"
	JSON_PATH         Type = "#>"
	JSON_PATH_TEXT    Type = "#>>"
)

// IsKeyword reports whether t is a reserved-word kind.
func (t Type) IsKeyword() bool {
	kw, ok := LookupKeyword(string(t))
	return ok && kw == t
}

// IsLiteral reports whether t carries a literal value.
func (t Type) IsLiteral() bool {
	switch t {
	case INT, FLOAT, STRING, PARAM:
		return true
	}
	return false
}

// IsOperator reports whether t is punctuation or an operator.
func (t Type) IsOperator() bool {
	switch t {
	case EOF, IDENT, INT, FLOAT, STRING, PARAM:
		return false
	}
	return !t.IsKeyword()
}
