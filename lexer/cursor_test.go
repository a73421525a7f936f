package lexer

import (
	"testing"

	"github.com/KimNorgaard/go-sqlscan/token"
	"github.com/stretchr/testify/require"
)

func TestCursorPeekAndAdvance(t *testing.T) {
	c := newCursor([]byte("a\nb"), token.Location{Line: 1, Column: 1})

	require.Equal(t, byte('a'), c.peek())
	require.Equal(t, byte('\n'), c.peekAt(1))
	require.Equal(t, eof, c.peekAt(3))

	require.Equal(t, byte('a'), c.advance())
	require.Equal(t, token.Location{Line: 1, Column: 2, Offset: 1}, c.location())
	require.Equal(t, byte('\n'), c.advance())
	require.Equal(t, token.Location{Line: 2, Column: 1, Offset: 2}, c.location())
	require.Equal(t, byte('b'), c.advance())
	require.True(t, c.atEnd())

	// Past the end both primitives are no-ops.
	end := c.location()
	require.Equal(t, eof, c.peek())
	require.Equal(t, eof, c.advance())
	require.Equal(t, eof, c.advance())
	require.Equal(t, end, c.location())
}

func TestCursorSkipInsignificant(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedOffset int
	}{
		{"nothing to skip", "x", 0},
		{"whitespace", " \t\r\n\fx", 5},
		{"line comment keeps newline for whitespace", "-- c\nx", 5},
		{"block comment", "/* c */x", 7},
		{"mixed", " -- a\n /* b */ \n--c\n\tx", 21},
		{"unterminated block", "/* x", 4},
		{"lone dash", "-x", 0},
		{"lone slash", "/x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input), token.Location{Line: 1, Column: 1})
			c.skipInsignificant()
			require.Equal(t, tt.expectedOffset, c.pos)
		})
	}
}

func TestLineCommentStopsAtNewline(t *testing.T) {
	c := newCursor([]byte("-- c\nx"), token.Location{Line: 1, Column: 1})
	c.skipComment()
	require.Equal(t, byte('\n'), c.peek())
	require.Equal(t, 1, c.line)
}

func TestCharacterClasses(t *testing.T) {
	for _, ch := range []byte(" \t\n\r\f") {
		require.True(t, isSpace(ch), "%q", ch)
	}
	require.False(t, isSpace('\v'))
	require.True(t, isLetter('_'))
	require.True(t, isLetter('Z'))
	require.False(t, isLetter('1'))
	require.False(t, isLetter(0xC3))
	require.True(t, isIdentifierChar('9'))
	require.False(t, isIdentifierChar('$'))
}
