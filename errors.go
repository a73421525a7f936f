package sqlscan

import "errors"

// ErrTooManyTokens is returned by Tokenize when the input holds more tokens
// than the MaxTokens option allows.
var ErrTooManyTokens = errors.New("sqlscan: too many tokens")
