package lexer

import "github.com/KimNorgaard/go-sqlscan/token"

// eof is returned by peek once the input is exhausted.
const eof byte = 0

// cursor walks an immutable byte slice, tracking line and column.
type cursor struct {
	input  []byte
	pos    int
	line   int
	column int
}

func newCursor(input []byte, start token.Location) cursor {
	return cursor{
		input:  input,
		pos:    start.Offset,
		line:   start.Line,
		column: start.Column,
	}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

// peek returns the current byte without consuming it.
func (c *cursor) peek() byte {
	return c.peekAt(0)
}

// peekAt returns the byte n positions past the current one.
func (c *cursor) peekAt(n int) byte {
	if c.pos+n >= len(c.input) {
		return eof
	}
	return c.input[c.pos+n]
}

// advance consumes one byte and returns it. It does nothing at end of input.
func (c *cursor) advance() byte {
	if c.atEnd() {
		return eof
	}
	ch := c.input[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return ch
}

func (c *cursor) location() token.Location {
	return token.Location{Line: c.line, Column: c.column, Offset: c.pos}
}

// text returns the input consumed since offset start.
func (c *cursor) text(start int) string {
	return string(c.input[start:c.pos])
}

func (c *cursor) skipWhitespace() {
	for !c.atEnd() && isSpace(c.peek()) {
		c.advance()
	}
}

func (c *cursor) atComment() bool {
	if c.pos+1 >= len(c.input) {
		return false
	}
	ch, next := c.peek(), c.peekAt(1)
	return (ch == '-' && next == '-') || (ch == '/' && next == '*')
}

// skipComment consumes one comment starting at the cursor. The newline ending
// a line comment is left in place. A block comment with no closing "*/"
// swallows the rest of the input without complaint.
func (c *cursor) skipComment() {
	switch {
	case c.peek() == '-' && c.peekAt(1) == '-':
		c.advance()
		c.advance()
		for !c.atEnd() && c.peek() != '\n' {
			c.advance()
		}
	case c.peek() == '/' && c.peekAt(1) == '*':
		c.advance()
		c.advance()
		for !c.atEnd() {
			if c.peek() == '*' && c.peekAt(1) == '/' {
				c.advance()
				c.advance()
				return
			}
			c.advance()
		}
	}
}

// skipInsignificant alternates whitespace and comment skipping until the
// cursor rests on the first byte of a token or at end of input.
func (c *cursor) skipInsignificant() {
	for {
		c.skipWhitespace()
		if !c.atComment() {
			return
		}
		c.skipComment()
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentifierChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
