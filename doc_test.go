package sqlscan_test

import (
	"go/parser"
	gotoken "go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageDocParses(t *testing.T) {
	f, err := parser.ParseFile(gotoken.NewFileSet(), "doc.go", nil, parser.ParseComments)
	require.NoError(t, err)
	require.Equal(t, "sqlscan", f.Name.Name)
	require.NotNil(t, f.Doc)

	text := f.Doc.Text()
	require.True(t, strings.HasPrefix(text, "Package sqlscan tokenizes SQL text."))
	// The comment must run to the end, past every usage example.
	require.Contains(t, text, "sqlscan.NewStream(lexer.New(src))")
}
