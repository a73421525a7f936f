package errors

import (
	"fmt"

	"github.com/KimNorgaard/go-sqlscan/token"
)

// Kind classifies a scan failure.
type Kind int

const (
	// UnterminatedString: end of input before the closing quote.
	UnterminatedString Kind = iota + 1
	// InvalidNumberFormat: an exponent marker with no digit after it.
	InvalidNumberFormat
	// UnexpectedCharacter: a byte that starts no token, or a bare '!'.
	UnexpectedCharacter
	// InvalidParameterMarker: '$' not followed by a digit.
	InvalidParameterMarker
)

func (k Kind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidNumberFormat:
		return "InvalidNumberFormat"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case InvalidParameterMarker:
		return "InvalidParameterMarker"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ScanError is a single failure to produce a token. Location is the start of
// the token that could not be scanned.
type ScanError struct {
	Kind    Kind
	Message string
	token.Location
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("sqlscan: scan error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Is matches another *ScanError of the same Kind, so a bare
// &ScanError{Kind: k} can be used as a target for errors.Is.
func (e *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	return ok && t.Kind == e.Kind
}

// ScanErrors is a slice of ScanError that implements the error interface.
// It is returned when scanning continues past failures.
type ScanErrors []*ScanError

func (s ScanErrors) Error() string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return s[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", s[0].Error(), len(s)-1)
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (s ScanErrors) Unwrap() []error {
	errs := make([]error, len(s))
	for i, e := range s {
		errs[i] = e
	}
	return errs
}
