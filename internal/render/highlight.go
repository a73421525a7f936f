package render

import (
	"strings"

	"github.com/KimNorgaard/go-sqlscan/internal/batch"
	"github.com/KimNorgaard/go-sqlscan/token"
	"github.com/charmbracelet/lipgloss"
)

type class int

const (
	classPlain class = iota
	classKeyword
	classString
	classNumber
	classParam
	classOperator
	classComment
	classError
	numClasses
)

func tokenClass(tok token.Token) class {
	switch {
	case tok.Type == token.STRING:
		return classString
	case tok.Type == token.INT || tok.Type == token.FLOAT:
		return classNumber
	case tok.Type == token.PARAM:
		return classParam
	case tok.Type == token.IDENT:
		return classPlain
	case tok.Type.IsKeyword():
		return classKeyword
	case tok.Type.IsOperator():
		return classOperator
	}
	return classPlain
}

// Highlighter colours SQL source using the token stream, so the output
// contains exactly the input text with styling added around it.
type Highlighter struct {
	plain  bool
	styles [numClasses]lipgloss.Style
}

// NewHighlighter returns a Highlighter whose styles are bound to r. The
// renderer decides whether colour escapes are emitted at all.
func NewHighlighter(r *lipgloss.Renderer) *Highlighter {
	h := &Highlighter{}
	style := func(color string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(color)).
			TabWidth(lipgloss.NoTabConversion)
	}
	h.styles[classPlain] = r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	h.styles[classKeyword] = style("#FF79C6").Bold(true)
	h.styles[classString] = style("#F1FA8C")
	h.styles[classNumber] = style("#BD93F9")
	h.styles[classParam] = style("#50FA7B")
	h.styles[classOperator] = style("#FFB86C")
	h.styles[classComment] = style("#6272A4").Italic(true)
	h.styles[classError] = style("#FF5555").Bold(true)
	return h
}

// PlainHighlighter returns a Highlighter that adds no styling.
func PlainHighlighter() *Highlighter {
	return &Highlighter{plain: true}
}

// Highlight returns the source of r with every token of r styled by its
// kind. Comments and the bytes named by r's scan errors are styled too;
// whitespace is left alone. Text after the last token, for example when a
// token limit cut the scan short, gets the comment style.
func (h *Highlighter) Highlight(r batch.Result) string {
	src := r.Source
	bad := make(map[int]bool)
	for _, e := range ScanErrors(r.Err) {
		bad[e.Offset] = true
	}

	var b strings.Builder
	pos := 0
	for _, tok := range r.Tokens {
		h.writeGap(&b, src, pos, tok.Offset, bad)
		h.write(&b, tokenClass(tok), tok.Literal)
		pos = tok.Offset + len(tok.Literal)
	}
	h.writeGap(&b, src, pos, len(src), bad)
	return b.String()
}

// writeGap writes the bytes between two tokens. Runs of bytes that failed
// to scan get the error style, everything else is comment or whitespace.
func (h *Highlighter) writeGap(b *strings.Builder, src []byte, from, to int, bad map[int]bool) {
	start := from
	for i := from; i < to; {
		if !bad[i] {
			i++
			continue
		}
		h.write(b, classComment, string(src[start:i]))
		j := i
		for j < to && bad[j] {
			j++
		}
		h.write(b, classError, string(src[i:j]))
		start, i = j, j
	}
	h.write(b, classComment, string(src[start:to]))
}

// write styles text line by line so multi-line strings and comments are not
// padded into a block.
func (h *Highlighter) write(b *strings.Builder, c class, text string) {
	if h.plain || text == "" {
		b.WriteString(text)
		return
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if strings.TrimSpace(line) == "" {
			b.WriteString(line)
			continue
		}
		b.WriteString(h.styles[c].Render(line))
	}
}
