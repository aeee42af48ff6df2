package highlight

import (
	"github.com/jeertmans/untex/pkg/latex/token"
)

// mathEnvironments are the environment names treated as math mode.
var mathEnvironments = map[string]bool{
	"equation":  true,
	"equation*": true,
	"align":     true,
	"align*":    true,
}

// closerFor maps an opening token to its closing token. Returning false
// means the token does not open a region for this machine.
type closerFor func(token.Token) (token.Token, bool)

// MathHighlighter marks tokens between a recognized math opener and its
// matching closer, both delimiters included. Tracking is flat: while inside,
// delimiters of a different kind are not tracked, and everything up to the
// recorded closer is marked highlighted.
type MathHighlighter struct {
	stream token.Stream
	opens  closerFor
	inside bool
	closer token.Token
}

// NewMath returns a highlighter for any math mode: display math brackets,
// single and double dollar signs, inline math parentheses, and the
// equation/align environments.
func NewMath(s token.Stream) *MathHighlighter {
	return &MathHighlighter{stream: s, opens: mathCloser}
}

// NewDisplayMath returns a highlighter restricted to display math: the
// bracket delimiters, double dollar signs, and the equation/align
// environments. Single dollar signs and inline math are excluded.
func NewDisplayMath(s token.Stream) *MathHighlighter {
	return &MathHighlighter{stream: s, opens: displayMathCloser}
}

// NewInlineMath returns a highlighter restricted to inline math: single
// dollar signs and the inline math parentheses.
func NewInlineMath(s token.Stream) *MathHighlighter {
	return &MathHighlighter{stream: s, opens: inlineMathCloser}
}

// Next implements Highlighter.
func (h *MathHighlighter) Next() (Annotated, bool) {
	st, ok := h.stream.Next()
	if !ok {
		return Annotated{}, false
	}

	if h.inside {
		if st.Token == h.closer {
			h.inside = false
			h.closer = token.Token{}
		}
		return Annotated{Highlighted: true, Tok: st}, true
	}

	if closer, ok := h.opens(st.Token); ok {
		h.inside = true
		h.closer = closer
	}
	return Annotated{Highlighted: h.inside, Tok: st}, true
}

func mathCloser(t token.Token) (token.Token, bool) {
	switch t.Kind {
	case token.KindDisplayMathOpen:
		return token.Token{Kind: token.KindDisplayMathClose}, true
	case token.KindDollarSign:
		return token.Token{Kind: token.KindDollarSign}, true
	case token.KindDoubleDollarSign:
		return token.Token{Kind: token.KindDoubleDollarSign}, true
	case token.KindInlineMathOpen:
		return token.Token{Kind: token.KindInlineMathClose}, true
	case token.KindEnvironmentBegin:
		if mathEnvironments[t.Name] {
			return token.EnvironmentEnd(t.Name), true
		}
	}
	return token.Token{}, false
}

func displayMathCloser(t token.Token) (token.Token, bool) {
	switch t.Kind {
	case token.KindDisplayMathOpen:
		return token.Token{Kind: token.KindDisplayMathClose}, true
	case token.KindDoubleDollarSign:
		return token.Token{Kind: token.KindDoubleDollarSign}, true
	case token.KindEnvironmentBegin:
		if mathEnvironments[t.Name] {
			return token.EnvironmentEnd(t.Name), true
		}
	}
	return token.Token{}, false
}

func inlineMathCloser(t token.Token) (token.Token, bool) {
	switch t.Kind {
	case token.KindDollarSign:
		return token.Token{Kind: token.KindDollarSign}, true
	case token.KindInlineMathOpen:
		return token.Token{Kind: token.KindInlineMathClose}, true
	}
	return token.Token{}, false
}
