package lexer

import (
	"github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/token"
)

func (l *Lexer) scanIdentifier(loc token.Location) (token.Token, error) {
	if !isLetter(l.cur.peek()) {
		return token.Token{}, l.errorf(errors.UnexpectedCharacter, loc, "unexpected character %q", l.cur.peek())
	}
	l.cur.advance()
	for isIdentifierChar(l.cur.peek()) {
		l.cur.advance()
	}
	tok := l.makeToken(token.IDENT, loc, token.Value{})
	tok.Type = token.LookupIdent(tok.Literal)
	return tok, nil
}
