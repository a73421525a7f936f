package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-sqlscan/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	query, err := testutil.ReadTestData("analytics.sql")
	require.NoError(t, err)

	for _, ext := range []string{".zst", ".lz4", ".sz", ".snappy"} {
		t.Run(ext, func(t *testing.T) {
			name := "query.sql" + ext
			c := CodecFor(name)
			require.NotNil(t, c)

			packed, err := Encode(name, query)
			require.NoError(t, err)
			require.NotEqual(t, query, packed)

			unpacked, err := Decode(name, packed)
			require.NoError(t, err)
			require.Equal(t, query, unpacked)
		})
	}
}

func TestPlainFilesPassThrough(t *testing.T) {
	require.Nil(t, CodecFor("query.sql"))
	data := []byte("SELECT 1")
	out, err := Decode("query.sql", data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestCodecForIsCaseInsensitive(t *testing.T) {
	c := CodecFor("DUMP.SQL.ZST")
	require.NotNil(t, c)
	require.Equal(t, "zstd", c.Name())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	query := []byte("SELECT * FROM t WHERE id = $1;\n")

	packed, err := Encode("q.sql.lz4", query)
	require.NoError(t, err)
	path := filepath.Join(dir, "q.sql.lz4")
	require.NoError(t, os.WriteFile(path, packed, 0o644))

	data, err := ReadFile(path, nil)
	require.NoError(t, err)
	require.Equal(t, query, data)

	data, err = ReadFile(Stdin, strings.NewReader("SELECT 2"))
	require.NoError(t, err)
	require.Equal(t, "SELECT 2", string(data))

	_, err = ReadFile(filepath.Join(dir, "missing.sql"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeCorruptInput(t *testing.T) {
	for _, name := range []string{"a.zst", "a.sz"} {
		_, err := Decode(name, []byte("definitely not compressed"))
		require.Error(t, err, name)
		require.Contains(t, err.Error(), "decompression failed")
	}
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "<stdin>", DisplayName(Stdin))
	require.Equal(t, "q.sql", DisplayName("q.sql.zst"))
	require.Equal(t, "q.sql", DisplayName("q.sql"))
}
