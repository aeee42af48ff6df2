package highlight

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// WriteColorized writes every token of h to w, resolving each token against
// source and rendering highlighted tokens with the given style. The style is
// applied and reset per token, not per contiguous run, so a run of adjacent
// highlighted tokens produces repeated set/reset pairs.
func WriteColorized(h Highlighter, source string, w io.Writer, style lipgloss.Style) error {
	for {
		a, ok := h.Next()
		if !ok {
			return nil
		}

		text := a.Tok.Resolve(source)
		if a.Highlighted {
			text = style.Render(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
}
