package sqlscan

import (
	"github.com/KimNorgaard/go-sqlscan/lexer"
	"github.com/KimNorgaard/go-sqlscan/token"
)

// Stream wraps a Lexer with arbitrary lookahead.
//
// Once the lexer reports an error the stream stops reading: the tokens
// buffered before the failure are still delivered, after which every call
// returns the same error.
type Stream struct {
	l   *lexer.Lexer
	buf []token.Token
	err error
}

// NewStream creates a new Stream reading from l.
func NewStream(l *lexer.Lexer) *Stream {
	return &Stream{l: l}
}

// Peek returns the token n positions ahead without consuming anything.
// Peek(0) is the token the next call to Next will return. Looking past the
// end of the input yields EOF.
func (s *Stream) Peek(n int) (token.Token, error) {
	if n < 0 {
		n = 0
	}
	if !s.fill(n) {
		return token.Token{}, s.err
	}
	return s.buf[n], nil
}

// Next consumes and returns the next token. After the input is exhausted
// Next keeps returning EOF.
func (s *Stream) Next() (token.Token, error) {
	if !s.fill(0) {
		return token.Token{}, s.err
	}
	tok := s.buf[0]
	if tok.Type == token.EOF && len(s.buf) == 1 {
		return tok, nil
	}
	s.buf = s.buf[1:]
	return tok, nil
}

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// fill buffers tokens until index n is available and reports whether it is.
func (s *Stream) fill(n int) bool {
	for len(s.buf) <= n {
		if k := len(s.buf); k > 0 && s.buf[k-1].Type == token.EOF {
			s.buf = append(s.buf, s.buf[k-1])
			continue
		}
		if s.err != nil {
			return false
		}
		tok, err := s.l.NextToken()
		if err != nil {
			s.err = err
			return false
		}
		s.buf = append(s.buf, tok)
	}
	return true
}
