package sqlscan_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-sqlscan"
	scanerrors "github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/stretchr/testify/require"
)

func FuzzTokenize(f *testing.F) {
	seedFiles, err := filepath.Glob("testdata/*.sql")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte("'"))
	f.Add([]byte("$"))
	f.Add([]byte("1e+"))
	f.Add([]byte("!!!"))
	f.Add([]byte("/* never closed"))

	f.Fuzz(func(t *testing.T, data []byte) {
		// In skip mode every failure is collected, so the call must always
		// reach the end of the input.
		tokens, err := sqlscan.Tokenize(data, sqlscan.SkipInvalid())
		if err != nil {
			var errs scanerrors.ScanErrors
			require.True(t, errors.As(err, &errs), "unexpected error type %T", err)
			require.NotEmpty(t, errs)
		}

		prev := -1
		for _, tok := range tokens {
			require.Greater(t, tok.Offset, prev)
			require.True(t, strings.HasPrefix(string(data[tok.Offset:]), tok.Literal))
			prev = tok.Offset
		}

		// Without skip mode the result is a prefix of the skip-mode result.
		strict, err := sqlscan.Tokenize(data)
		if err == nil {
			require.Equal(t, tokens, strict)
			return
		}
		require.LessOrEqual(t, len(strict), len(tokens))
		if len(strict) > 0 {
			require.Equal(t, strict, tokens[:len(strict)])
		}
	})
}
