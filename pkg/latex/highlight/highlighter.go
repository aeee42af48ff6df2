// Package highlight annotates LaTeX token streams. Each highlighter consumes
// a token stream and produces a same-length, same-order stream of annotated
// tokens; the boolean is a pure annotation, no tokens are added, removed, or
// reordered.
//
// Malformed or unbalanced delimiter nesting is not a failure: a machine is
// simply left in whatever state it reaches at end of stream.
package highlight

import (
	"github.com/jeertmans/untex/pkg/latex/token"
)

// Annotated is a spanned token together with its highlight flag.
type Annotated struct {
	Highlighted bool
	Tok         token.SpannedToken
}

// Highlighter is a lazy, pull-based sequence of annotated tokens.
type Highlighter interface {
	Next() (Annotated, bool)
}

// Collect drains a highlighter into a slice.
func Collect(h Highlighter) []Annotated {
	var out []Annotated
	for {
		a, ok := h.Next()
		if !ok {
			return out
		}
		out = append(out, a)
	}
}

// Spans returns the spans of the highlighted tokens only.
func Spans(h Highlighter) []token.Span {
	var spans []token.Span
	for {
		a, ok := h.Next()
		if !ok {
			return spans
		}
		if a.Highlighted {
			spans = append(spans, a.Tok.Span)
		}
	}
}

// Tokens returns the highlighted tokens only, without their spans.
func Tokens(h Highlighter) []token.Token {
	var tokens []token.Token
	for {
		a, ok := h.Next()
		if !ok {
			return tokens
		}
		if a.Highlighted {
			tokens = append(tokens, a.Tok.Token)
		}
	}
}

// SpannedTokens returns the highlighted spanned tokens only.
func SpannedTokens(h Highlighter) []token.SpannedToken {
	var tokens []token.SpannedToken
	for {
		a, ok := h.Next()
		if !ok {
			return tokens
		}
		if a.Highlighted {
			tokens = append(tokens, a.Tok)
		}
	}
}

// KindHighlighter marks tokens whose kind equals a target kind. It is
// memoryless: each token is classified independently.
type KindHighlighter struct {
	stream token.Stream
	kind   token.Kind
}

// NewKind returns a highlighter marking every token of the given kind.
func NewKind(s token.Stream, kind token.Kind) *KindHighlighter {
	return &KindHighlighter{stream: s, kind: kind}
}

// Next implements Highlighter.
func (h *KindHighlighter) Next() (Annotated, bool) {
	st, ok := h.stream.Next()
	if !ok {
		return Annotated{}, false
	}
	return Annotated{Highlighted: st.Token.Kind == h.kind, Tok: st}, true
}
