package sqlscan

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	scanerrors "github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			tokens, err := Tokenize(src, SkipInvalid())

			var b strings.Builder
			b.WriteString(Format(tokens))
			if err != nil {
				// Failures are listed after the tokens that survived them.
				var errs scanerrors.ScanErrors
				require.ErrorAs(t, err, &errs)
				for _, e := range errs {
					b.WriteString("error\t" + e.Error() + "\n")
				}
			}
			actual := b.String()

			goldenFile := strings.Replace(file, ".sql", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, []byte(actual), 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), actual, "token listing does not match golden file")
		})
	}
}
