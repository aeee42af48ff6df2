package highlight

import (
	"github.com/jeertmans/untex/pkg/latex/token"
)

// documentEnvironment is the environment name separating preamble from body.
const documentEnvironment = "document"

// PreambleHighlighter marks tokens from the document class declaration up to,
// but not including, the begin of the document environment. The preamble
// ends strictly before the document body starts, so `\begin{document}`
// itself is not highlighted.
type PreambleHighlighter struct {
	stream token.Stream
	inside bool
}

// NewPreamble returns a preamble highlighter.
func NewPreamble(s token.Stream) *PreambleHighlighter {
	return &PreambleHighlighter{stream: s}
}

// Next implements Highlighter.
func (h *PreambleHighlighter) Next() (Annotated, bool) {
	st, ok := h.stream.Next()
	if !ok {
		return Annotated{}, false
	}

	switch {
	case st.Token.Kind == token.KindDocumentClass:
		h.inside = true
	case st.Token.Kind == token.KindEnvironmentBegin && st.Token.Name == documentEnvironment:
		h.inside = false
	}
	return Annotated{Highlighted: h.inside, Tok: st}, true
}

// DocumentHighlighter marks tokens of the document environment, begin and
// end delimiters both included.
type DocumentHighlighter struct {
	stream token.Stream
	inside bool
}

// NewDocument returns a document body highlighter.
func NewDocument(s token.Stream) *DocumentHighlighter {
	return &DocumentHighlighter{stream: s}
}

// Next implements Highlighter.
func (h *DocumentHighlighter) Next() (Annotated, bool) {
	st, ok := h.stream.Next()
	if !ok {
		return Annotated{}, false
	}

	switch {
	case st.Token.Kind == token.KindEnvironmentBegin && st.Token.Name == documentEnvironment:
		h.inside = true
	case st.Token.Kind == token.KindEnvironmentEnd && st.Token.Name == documentEnvironment:
		h.inside = false
		// The closing delimiter belongs to the document.
		return Annotated{Highlighted: true, Tok: st}, true
	}
	return Annotated{Highlighted: h.inside, Tok: st}, true
}
