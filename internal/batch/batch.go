// Package batch tokenizes many inputs concurrently.
package batch

import (
	"context"
	"fmt"

	"github.com/KimNorgaard/go-sqlscan"
	"github.com/KimNorgaard/go-sqlscan/internal/logging"
	"github.com/KimNorgaard/go-sqlscan/token"
	"golang.org/x/sync/errgroup"
)

// Loader returns the contents of the named input.
type Loader func(name string) ([]byte, error)

// Result is the outcome for one input. Err holds scan failures only; a
// failure to load any input aborts the whole run instead.
type Result struct {
	Name   string
	Source []byte
	Tokens []token.Token
	Err    error
}

// Run loads and tokenizes every name using at most workers goroutines, each
// with its own lexer. Results come back in the order of names.
func Run(ctx context.Context, names []string, load Loader, workers int, opts ...sqlscan.Option) ([]Result, error) {
	results := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := load(name)
			if err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
			tokens, err := sqlscan.Tokenize(src, opts...)
			logging.WithFile(name).Debug("tokenized",
				"bytes", len(src),
				"tokens", len(tokens),
				"failed", err != nil)
			results[i] = Result{Name: name, Source: src, Tokens: tokens, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed reports whether any result carries a scan error.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
