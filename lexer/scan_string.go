package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/token"
)

// scanString reads a literal delimited by ' or ". Inside it, a doubled
// delimiter stands for one delimiter, and a backslash carries the byte after
// it through untouched, backslash included.
func (l *Lexer) scanString(loc token.Location) (token.Token, error) {
	quote := l.cur.advance() // consume opening quote
	var buf strings.Builder
	for !l.cur.atEnd() {
		ch := l.cur.peek()
		switch {
		case ch == quote && l.cur.peekAt(1) == quote:
			l.cur.advance()
			l.cur.advance()
			buf.WriteByte(quote)
		case ch == quote:
			l.cur.advance() // consume closing quote
			return l.makeToken(token.STRING, loc, token.String(buf.String())), nil
		case ch == '\\':
			buf.WriteByte(l.cur.advance())
			if !l.cur.atEnd() {
				buf.WriteByte(l.cur.advance())
			}
		default:
			buf.WriteByte(l.cur.advance())
		}
	}
	return token.Token{}, l.errorf(errors.UnterminatedString, loc, "unterminated string literal")
}
