package lexer

import (
	"strconv"

	"github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/token"
)

// scanNumber reads digits [. digits] [(e|E) [+|-] digits]. A '.' that is not
// followed by a digit is left for the operator scanner.
func (l *Lexer) scanNumber(loc token.Location) (token.Token, error) {
	isFloat := false
	l.consumeDigits()

	if l.cur.peek() == '.' && isDigit(l.cur.peekAt(1)) {
		isFloat = true
		l.cur.advance() // consume '.'
		l.consumeDigits()
	}

	if ch := l.cur.peek(); ch == 'e' || ch == 'E' {
		isFloat = true
		l.cur.advance()
		if ch := l.cur.peek(); ch == '+' || ch == '-' {
			l.cur.advance()
		}
		if !isDigit(l.cur.peek()) {
			return token.Token{}, l.errorf(errors.InvalidNumberFormat, loc, "invalid number format")
		}
		l.consumeDigits()
	}

	lit := l.cur.text(loc.Offset)
	if isFloat {
		return l.makeToken(token.FLOAT, loc, token.Float(parseFloat(lit))), nil
	}
	return l.makeToken(token.INT, loc, token.Int(parseInt(lit))), nil
}

func (l *Lexer) consumeDigits() {
	for isDigit(l.cur.peek()) {
		l.cur.advance()
	}
}

// parseInt converts a run of decimal digits. Out-of-range values saturate at
// the int64 bounds.
func parseInt(digits string) int64 {
	// On overflow ParseInt reports ErrRange alongside the saturated value.
	n, _ := strconv.ParseInt(digits, 10, 64)
	return n
}

// parseFloat converts a scanned float literal. Out-of-range values become
// ±Inf or 0.
func parseFloat(lit string) float64 {
	f, _ := strconv.ParseFloat(lit, 64)
	return f
}
