package lexer

import (
	"github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/token"
)

var singleCharTokens = [256]token.Type{
	'(': token.LPAREN,
	')': token.RPAREN,
	'[': token.LBRACKET,
	']': token.RBRACKET,
	'{': token.LBRACE,
	'}': token.RBRACE,
	',': token.COMMA,
	';': token.SEMICOLON,
	'.': token.DOT,
	'+': token.PLUS,
	'*': token.MULTIPLY,
	'/': token.DIVIDE,
	'%': token.MODULO,
	'^': token.POWER,
	'=': token.EQ,
	'&': token.BITAND,
}

// scanOperator reads punctuation and operators, preferring the longest
// spelling that matches at the cursor. The lookahead happens before any
// byte is consumed.
func (l *Lexer) scanOperator(loc token.Location) (token.Token, error) {
	ch, next, third := l.cur.peek(), l.cur.peekAt(1), l.cur.peekAt(2)

	typ, width := singleCharTokens[ch], 1
	switch ch {
	case '-':
		switch {
		case next == '>' && third == '>':
			typ, width = token.JSON_EXTRACT_TEXT, 3
		case next == '>':
			typ, width = token.JSON_EXTRACT, 2
		default:
			typ = token.MINUS
		}
	case '#':
		switch {
		case next == '>' && third == '>':
			typ, width = token.JSON_PATH_TEXT, 3
		case next == '>':
			typ, width = token.JSON_PATH, 2
		default:
			typ = token.BITXOR
		}
	case '<':
		switch next {
		case '=':
			typ, width = token.LE, 2
		case '>':
			typ, width = token.NE, 2
		case '<':
			typ, width = token.LSHIFT, 2
		default:
			typ = token.LT
		}
	case '>':
		switch next {
		case '=':
			typ, width = token.GE, 2
		case '>':
			typ, width = token.RSHIFT, 2
		default:
			typ = token.GT
		}
	case '!':
		switch {
		case next == '=':
			typ, width = token.NE, 2
		case next == '~' && third == '*':
			typ, width = token.REGEX_INMATCH, 3
		case next == '~':
			typ, width = token.REGEX_NMATCH, 2
		}
	case '|':
		if next == '|' {
			typ, width = token.CONCAT, 2
		} else {
			typ = token.BITOR
		}
	case '~':
		if next == '*' {
			typ, width = token.REGEX_IMATCH, 2
		} else {
			typ = token.REGEX_MATCH
		}
	case ':':
		if next == ':' {
			typ, width = token.TYPECAST, 2
		} else {
			typ = token.COLON
		}
	case '$':
		return l.scanParam(loc)
	}

	if typ == "" {
		l.cur.advance()
		return token.Token{}, l.errorf(errors.UnexpectedCharacter, loc, "unexpected character %q", ch)
	}
	for range width {
		l.cur.advance()
	}
	return l.makeToken(typ, loc, token.Value{}), nil
}

// scanParam reads a positional parameter marker such as $1.
func (l *Lexer) scanParam(loc token.Location) (token.Token, error) {
	l.cur.advance() // consume '$'
	if !isDigit(l.cur.peek()) {
		return token.Token{}, l.errorf(errors.InvalidParameterMarker, loc, "invalid parameter marker")
	}
	l.consumeDigits()
	lit := l.cur.text(loc.Offset)
	return l.makeToken(token.PARAM, loc, token.Int(parseInt(lit[1:]))), nil
}
