// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jeertmans/untex/pkg/config"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token dump components
	KindName lipgloss.Style
	Location lipgloss.Style
	Payload  lipgloss.Style

	// Dependency tree components
	TreeRoot  lipgloss.Style
	TreeGroup lipgloss.Style
	TreeLang  lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			KindName:  plain,
			Location:  plain,
			Payload:   plain,
			TreeRoot:  plain,
			TreeGroup: plain,
			TreeLang:  plain,
			Dim:       plain,
			Bold:      plain,
		}
	}

	return &Styles{
		KindName:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Payload:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TreeRoot:  lipgloss.NewStyle().Bold(true),
		TreeGroup: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		TreeLang:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:      lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // auto
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// namedColors maps the color names accepted on the command line to their
// ANSI palette indices. Anything else is passed to lipgloss verbatim, which
// accepts palette indices and hex values.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// HighlightStyle builds the lipgloss style applied around highlighted tokens
// from the opaque style descriptor.
func HighlightStyle(cfg config.StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if cfg.Foreground != "" {
		style = style.Foreground(lipgloss.Color(resolveColor(cfg.Foreground)))
	}
	if cfg.Background != "" {
		style = style.Background(lipgloss.Color(resolveColor(cfg.Background)))
	}
	if cfg.Bold {
		style = style.Bold(true)
	}
	if cfg.Faint {
		style = style.Faint(true)
	}
	if cfg.Italic {
		style = style.Italic(true)
	}
	if cfg.Underline {
		style = style.Underline(true)
	}
	if cfg.Strikethrough {
		style = style.Strikethrough(true)
	}

	return style
}

func resolveColor(name string) string {
	if code, ok := namedColors[name]; ok {
		return code
	}
	return name
}
