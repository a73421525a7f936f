// Package source reads SQL input for the sqlscan command, transparently
// decompressing files by extension.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the name that selects standard input.
const Stdin = "-"

// Codec compresses and decompresses whole buffers.
type Codec interface {
	Name() string
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

var codecs = map[string]Codec{
	".zst":    &zstdCodec{},
	".lz4":    lz4Codec{},
	".sz":     snappyCodec{},
	".snappy": snappyCodec{},
}

// CodecFor returns the codec selected by the extension of name, or nil for
// uncompressed input.
func CodecFor(name string) Codec {
	return codecs[strings.ToLower(filepath.Ext(name))]
}

// DisplayName strips a compression extension, so "q.sql.zst" shows as
// "q.sql".
func DisplayName(name string) string {
	if name == Stdin {
		return "<stdin>"
	}
	if CodecFor(name) != nil {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// ReadFile returns the decompressed contents of name. The name "-" reads
// stdin instead, which is never decompressed.
func ReadFile(name string, stdin io.Reader) ([]byte, error) {
	if name == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Decode(name, data)
}

// Decode decompresses data according to the extension of name.
func Decode(name string, data []byte) ([]byte, error) {
	c := CodecFor(name)
	if c == nil {
		return data, nil
	}
	out, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s decompression failed: %w", name, c.Name(), err)
	}
	return out, nil
}

// Encode compresses data according to the extension of name.
func Encode(name string, data []byte) ([]byte, error) {
	c := CodecFor(name)
	if c == nil {
		return data, nil
	}
	out, err := c.Encode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s compression failed: %w", name, c.Name(), err)
	}
	return out, nil
}

type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }

func (lz4Codec) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (lz4Codec) Decode(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

type snappyCodec struct{}

func (snappyCodec) Name() string { return "snappy" }

func (snappyCodec) Encode(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCodec) Decode(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}

// zstdCodec creates its encoder and decoder on first use. Both are safe for
// concurrent EncodeAll and DecodeAll calls.
type zstdCodec struct {
	encOnce sync.Once
	enc     *zstd.Encoder
	encErr  error

	decOnce sync.Once
	dec     *zstd.Decoder
	decErr  error
}

func (*zstdCodec) Name() string { return "zstd" }

func (c *zstdCodec) Encode(data []byte) ([]byte, error) {
	c.encOnce.Do(func() {
		c.enc, c.encErr = zstd.NewWriter(nil)
	})
	if c.encErr != nil {
		return nil, c.encErr
	}
	return c.enc.EncodeAll(data, nil), nil
}

func (c *zstdCodec) Decode(data []byte) ([]byte, error) {
	c.decOnce.Do(func() {
		c.dec, c.decErr = zstd.NewReader(nil)
	})
	if c.decErr != nil {
		return nil, c.decErr
	}
	return c.dec.DecodeAll(data, nil)
}
