package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/KimNorgaard/go-sqlscan"
	"github.com/KimNorgaard/go-sqlscan/internal/testutil"
	"github.com/stretchr/testify/require"
)

func fixtureLoader(t *testing.T) ([]string, Loader) {
	t.Helper()
	names, files, err := testutil.SQLFixtures()
	require.NoError(t, err)
	return names, func(name string) ([]byte, error) {
		data, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("no fixture %s", name)
		}
		return data, nil
	}
}

func TestRunMatchesSequentialTokenize(t *testing.T) {
	names, load := fixtureLoader(t)

	for _, workers := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			results, err := Run(context.Background(), names, load, workers)
			require.NoError(t, err)
			require.Len(t, results, len(names))
			require.False(t, Failed(results))

			for i, r := range results {
				require.Equal(t, names[i], r.Name)
				src, _ := load(r.Name)
				expected, err := sqlscan.Tokenize(src)
				require.NoError(t, err)
				require.Equal(t, expected, r.Tokens)
			}
		})
	}
}

func TestRunKeepsScanErrorsPerInput(t *testing.T) {
	inputs := map[string]string{
		"good.sql": "SELECT 1",
		"bad.sql":  "SELECT 'open",
	}
	load := func(name string) ([]byte, error) { return []byte(inputs[name]), nil }

	results, err := Run(context.Background(), []string{"good.sql", "bad.sql"}, load, 2)
	require.NoError(t, err)
	require.True(t, Failed(results))
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.Len(t, results[1].Tokens, 1)
}

func TestRunPassesOptions(t *testing.T) {
	load := func(string) ([]byte, error) { return []byte("a ! b"), nil }

	results, err := Run(context.Background(), []string{"x"}, load, 1, sqlscan.SkipInvalid())
	require.NoError(t, err)
	require.Len(t, results[0].Tokens, 2)
	require.Error(t, results[0].Err)
}

func TestRunStopsOnLoadError(t *testing.T) {
	errBoom := errors.New("boom")
	var calls atomic.Int32
	load := func(name string) ([]byte, error) {
		calls.Add(1)
		if name == "broken" {
			return nil, errBoom
		}
		return []byte("SELECT 1"), nil
	}

	names := []string{"broken", "a", "b", "c", "d"}
	_, err := Run(context.Background(), names, load, 1)
	require.ErrorIs(t, err, errBoom)
	require.ErrorContains(t, err, "loading broken")
	// With a single worker the later inputs see the cancelled context.
	require.Equal(t, int32(1), calls.Load())
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []string{"a"}, func(string) ([]byte, error) { return nil, nil }, 1)
	require.ErrorIs(t, err, context.Canceled)
}
