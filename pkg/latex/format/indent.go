package format

import (
	"strings"

	"github.com/jeertmans/untex/pkg/latex/token"
)

// indentUnit is the whitespace emitted per nesting level.
const indentUnit = "  "

// AutoIndenter rewrites the leading whitespace of each line to two spaces
// per nesting level. Nesting only grows inside the document environment, so
// preamble lines stay flush left. Lines whose first significant token closes
// an environment are indented one level less, aligning `\end{...}` with its
// `\begin{...}`.
//
// Indentation tokens are synthetic OwnedString tokens carrying a placeholder
// span; Write resolves them to their owned text. Applying the formatter to
// its own output is a no-op.
type AutoIndenter struct {
	stream token.Stream

	peeked    token.SpannedToken
	hasPeeked bool

	insideDocument bool
	targetLevel    int
	lineIndented   bool
}

// AutoIndent returns an auto-indenting formatter over s.
func AutoIndent(s token.Stream) *AutoIndenter {
	return &AutoIndenter{stream: s}
}

func (f *AutoIndenter) peek() (token.SpannedToken, bool) {
	if !f.hasPeeked {
		st, ok := f.stream.Next()
		if !ok {
			return token.SpannedToken{}, false
		}
		f.peeked = st
		f.hasPeeked = true
	}
	return f.peeked, true
}

func (f *AutoIndenter) consume() (token.SpannedToken, bool) {
	if st, ok := f.peek(); ok {
		f.hasPeeked = false
		return st, true
	}
	return token.SpannedToken{}, false
}

// Next implements token.Stream, producing one output token per call.
func (f *AutoIndenter) Next() (token.SpannedToken, bool) {
	if !f.lineIndented {
		// Existing leading whitespace is discarded, not emitted.
		for {
			st, ok := f.peek()
			if !ok {
				return token.SpannedToken{}, false
			}
			if st.Token.Kind != token.KindTabsOrSpaces {
				break
			}
			f.consume()
		}

		st, _ := f.peek()
		if st.Token.Kind == token.KindEnvironmentEnd && f.targetLevel > 0 {
			// The closing delimiter aligns with its opening one. A line
			// triggers at most one decrement: the indent below marks it.
			f.targetLevel--
		}

		f.lineIndented = true
		return token.SpannedToken{
			Token: token.OwnedString(strings.Repeat(indentUnit, f.targetLevel)),
		}, true
	}

	st, ok := f.consume()
	if !ok {
		return token.SpannedToken{}, false
	}

	switch st.Token.Kind {
	case token.KindEnvironmentBegin:
		if st.Token.Name == documentEnvironment {
			f.insideDocument = true
		}
		if f.insideDocument {
			f.targetLevel++
		}
	case token.KindNewline:
		f.lineIndented = false
	}
	return st, true
}

// documentEnvironment is the environment name that starts the document body.
const documentEnvironment = "document"
