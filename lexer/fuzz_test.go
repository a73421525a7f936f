package lexer_test

import (
	"testing"

	"github.com/KimNorgaard/go-sqlscan/internal/testutil"
	"github.com/KimNorgaard/go-sqlscan/lexer"
	"github.com/KimNorgaard/go-sqlscan/token"
	"github.com/stretchr/testify/require"
)

func FuzzNextToken(f *testing.F) {
	_, files, err := testutil.SQLFixtures()
	if err != nil {
		f.Fatalf("failed to load fixtures: %v", err)
	}
	for _, data := range files {
		f.Add(data)
	}

	// Edge cases
	for _, s := range []string{
		"", "   ", "'", "''''", `'\`, "1e", "1.", "$", "$$1", "!", "!~*",
		"->>", "#>>", "/*", "/*/", "--", "\x00\x01\x02", "é", "SELECT",
	} {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, input []byte) {
		l := lexer.New(input)
		prev := -1
		// Every successful token consumes at least one byte, so the loop
		// is bounded by the input length.
		for range len(input) + 1 {
			tok, err := l.NextToken()
			if err != nil {
				return
			}
			if tok.Type == token.EOF {
				require.Equal(t, len(input), tok.Offset)
				return
			}
			require.Greater(t, tok.Offset, prev)
			require.Equal(t, string(input[tok.Offset:tok.Offset+len(tok.Literal)]), tok.Literal)
			prev = tok.Offset
		}
		t.Fatalf("lexer did not reach EOF")
	})
}
