package sqlscan

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-sqlscan/token"
)

// WriteTokens writes one line per token to w in the form
//
//	line:column<TAB>offset<TAB>TYPE<TAB>"literal"[<TAB>value]
//
// The value column is present only for tokens that carry a decoded value.
func WriteTokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%q", tok.Location, tok.Offset, tok.Type, tok.Literal); err != nil {
			return err
		}
		if tok.Value.Kind() != token.NoValue {
			if _, err := fmt.Fprintf(w, "\t%s", tok.Value); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Format returns the WriteTokens rendering of tokens as a string.
func Format(tokens []token.Token) string {
	var buf bytes.Buffer
	_ = WriteTokens(&buf, tokens)
	return buf.String()
}
