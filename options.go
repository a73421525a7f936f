package sqlscan

import (
	"fmt"
	"log/slog"
)

// Option configures Tokenize.
type Option func(*options) error

type options struct {
	logger      *slog.Logger
	skipInvalid bool
	maxTokens   int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLogger returns an Option that sends debug records about skipped input
// and token counts to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return fmt.Errorf("sqlscan: logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// SkipInvalid returns an Option that keeps tokenizing after a scan error.
// Scanning restarts one byte past the start of the token that failed, and
// every failure is reported in the returned errors.ScanErrors.
func SkipInvalid() Option {
	return func(o *options) error {
		o.skipInvalid = true
		return nil
	}
}

// MaxTokens returns an Option that limits how many tokens Tokenize will
// collect before failing with ErrTooManyTokens.
//
// The limit n must be a positive integer.
func MaxTokens(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("sqlscan: max tokens must be a positive integer")
		}
		o.maxTokens = n
		return nil
	}
}
