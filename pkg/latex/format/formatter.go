// Package format rewrites LaTeX token streams. A formatter consumes a token
// stream and produces another token stream, possibly of different length,
// preserving the left-to-right order of surviving and inserted tokens.
// Inserted synthetic tokens are OwnedString tokens whose spans are
// placeholders; Write resolves them to their owned text.
package format

import (
	"io"

	"github.com/jeertmans/untex/pkg/latex/token"
)

// Write writes every token of s to w, resolving synthetic tokens to their
// owned text and every other token to its source slice.
func Write(s token.Stream, source string, w io.Writer) error {
	for {
		st, ok := s.Next()
		if !ok {
			return nil
		}
		if _, err := io.WriteString(w, st.Resolve(source)); err != nil {
			return err
		}
	}
}
