// Package render writes tokenization results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/KimNorgaard/go-sqlscan"
	scanerrors "github.com/KimNorgaard/go-sqlscan/errors"
	"github.com/KimNorgaard/go-sqlscan/internal/batch"
	"github.com/KimNorgaard/go-sqlscan/internal/source"
	"github.com/KimNorgaard/go-sqlscan/token"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the structured form of one result.
type Document struct {
	File   string     `json:"file" yaml:"file"`
	Tokens []TokenDoc `json:"tokens" yaml:"tokens"`
	Errors []ErrorDoc `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// TokenDoc is the structured form of a token.
type TokenDoc struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Offset  int    `json:"offset" yaml:"offset"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// ErrorDoc is the structured form of a scan failure.
type ErrorDoc struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Offset  int    `json:"offset" yaml:"offset"`
}

// NewDocument converts a batch result. The file is named as the user sees
// it, without a compression extension.
func NewDocument(r batch.Result) Document {
	doc := Document{File: source.DisplayName(r.Name), Tokens: make([]TokenDoc, len(r.Tokens))}
	for i, tok := range r.Tokens {
		doc.Tokens[i] = TokenDoc{
			Type:    string(tok.Type),
			Literal: tok.Literal,
			Line:    tok.Line,
			Column:  tok.Column,
			Offset:  tok.Offset,
			Value:   docValue(tok.Value),
		}
	}
	for _, e := range ScanErrors(r.Err) {
		doc.Errors = append(doc.Errors, ErrorDoc{
			Kind:    e.Kind.String(),
			Message: e.Message,
			Line:    e.Line,
			Column:  e.Column,
			Offset:  e.Offset,
		})
	}
	return doc
}

// docValue returns the payload of v. Overflowed floats are written as
// "+Inf" or "-Inf", which JSON has no number for.
func docValue(v token.Value) any {
	if f, ok := v.Float(); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return v.String()
	}
	return v.Interface()
}

// ScanErrors flattens err into its individual scan failures.
func ScanErrors(err error) []*scanerrors.ScanError {
	var many scanerrors.ScanErrors
	if errors.As(err, &many) {
		return many
	}
	var one *scanerrors.ScanError
	if errors.As(err, &one) {
		return []*scanerrors.ScanError{one}
	}
	return nil
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []batch.Result) error {
	switch format {
	case FormatText:
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(documents(results))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(documents(results)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("render: unknown format %q", format)
}

func documents(results []batch.Result) []Document {
	docs := make([]Document, len(results))
	for i, r := range results {
		docs[i] = NewDocument(r)
	}
	return docs
}

func writeText(w io.Writer, results []batch.Result) error {
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", source.DisplayName(r.Name)); err != nil {
				return err
			}
		}
		if err := sqlscan.WriteTokens(w, r.Tokens); err != nil {
			return err
		}
		if err := writeErrors(w, r.Err); err != nil {
			return err
		}
	}
	return nil
}

func writeErrors(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	failures := ScanErrors(err)
	if failures == nil {
		_, werr := fmt.Fprintf(w, "error\t%v\n", err)
		return werr
	}
	for _, e := range failures {
		if _, werr := fmt.Fprintf(w, "error\t%v\n", e); werr != nil {
			return werr
		}
	}
	return nil
}
