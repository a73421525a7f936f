package lexer

import (
	"fmt"

	"github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/token"
)

// Lexer holds the state for tokenizing SQL source. A Lexer is not safe for
// concurrent use; tokenize in parallel with one Lexer per goroutine.
type Lexer struct {
	cur     cursor
	lastErr error
}

// New creates and returns a new Lexer over input. The input must not be
// modified while the Lexer is in use.
func New(input []byte) *Lexer {
	return NewAt(input, token.Location{Line: 1, Column: 1})
}

// NewAt creates a Lexer that starts scanning at start.Offset, reporting
// positions as if the preceding bytes had already been consumed. Callers
// use it to resume past a byte that failed to scan.
func NewAt(input []byte, start token.Location) *Lexer {
	start.Offset = max(0, min(start.Offset, len(input)))
	start.Line = max(1, start.Line)
	start.Column = max(1, start.Column)
	return &Lexer{cur: newCursor(input, start)}
}

// NextToken scans the input and returns the next token. At end of input it
// returns an EOF token, and keeps doing so on every later call.
//
// A failed call returns a *errors.ScanError. The Lexer does not
// resynchronize after a failure, so the remainder of the stream is unusable.
func (l *Lexer) NextToken() (token.Token, error) {
	l.cur.skipInsignificant()

	loc := l.cur.location()
	if l.cur.atEnd() {
		return token.Token{Type: token.EOF, Location: loc}, nil
	}

	var (
		tok token.Token
		err error
	)
	switch ch := l.cur.peek(); {
	case ch == '\'' || ch == '"':
		tok, err = l.scanString(loc)
	case isDigit(ch):
		tok, err = l.scanNumber(loc)
	case isLetter(ch):
		tok, err = l.scanIdentifier(loc)
	default:
		tok, err = l.scanOperator(loc)
	}
	if err != nil {
		l.lastErr = err
		return token.Token{}, err
	}
	return tok, nil
}

// LastError returns the most recent scan failure, or nil if every call so
// far has succeeded.
func (l *Lexer) LastError() error {
	return l.lastErr
}

// Location returns the position of the next unconsumed byte.
func (l *Lexer) Location() token.Location {
	return l.cur.location()
}

func (l *Lexer) errorf(kind errors.Kind, loc token.Location, format string, args ...any) *errors.ScanError {
	return &errors.ScanError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

func (l *Lexer) makeToken(typ token.Type, loc token.Location, value token.Value) token.Token {
	return token.Token{
		Type:     typ,
		Literal:  l.cur.text(loc.Offset),
		Location: loc,
		Value:    value,
	}
}
