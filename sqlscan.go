package sqlscan

import (
	"errors"
	"fmt"

	scanerrors "github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/lexer"
	"github.com/KimNorgaard/go-sqlscan/token"
)

// Tokenize scans the whole input and returns its tokens, excluding the final
// EOF token.
//
// On a scan error Tokenize returns the tokens read so far together with the
// *errors.ScanError. With the SkipInvalid option it instead records the
// failure, resumes one byte past the failing token's start, and returns all
// failures as errors.ScanErrors once the input is exhausted.
func Tokenize(input []byte, opts ...Option) ([]token.Token, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	var (
		tokens   []token.Token
		failures scanerrors.ScanErrors
	)
	l := lexer.New(input)
	for {
		tok, err := l.NextToken()
		if err != nil {
			var scanErr *scanerrors.ScanError
			if !o.skipInvalid || !errors.As(err, &scanErr) {
				return tokens, err
			}
			failures = append(failures, scanErr)
			o.logger.Debug("skipping unscannable byte",
				"line", scanErr.Line,
				"column", scanErr.Column,
				"kind", scanErr.Kind.String())
			l = lexer.NewAt(input, resumeAfter(scanErr.Location))
			continue
		}
		if tok.Type == token.EOF {
			break
		}
		if o.maxTokens > 0 && len(tokens) == o.maxTokens {
			return tokens, fmt.Errorf("%w: limit is %d", ErrTooManyTokens, o.maxTokens)
		}
		tokens = append(tokens, tok)
	}

	o.logger.Debug("tokenized input",
		"bytes", len(input),
		"tokens", len(tokens),
		"errors", len(failures))
	if len(failures) > 0 {
		return tokens, failures
	}
	return tokens, nil
}

// resumeAfter returns the location one byte past loc. The byte at loc starts
// a token, so it is never a newline.
func resumeAfter(loc token.Location) token.Location {
	loc.Offset++
	loc.Column++
	return loc
}
