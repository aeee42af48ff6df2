package configloader

import (
	"os"

	"github.com/jeertmans/untex/pkg/config"
)

// Environment variables recognized by untex.
const (
	envColor        = "UNTEX_COLOR"
	envPart         = "UNTEX_HIGHLIGHT_PART"
	envForeground   = "UNTEX_HIGHLIGHT_FG"
	envBackground   = "UNTEX_HIGHLIGHT_BG"
	envAutoIndent   = "UNTEX_FORMAT_AUTO_INDENT"
	envKeepComments = "UNTEX_FORMAT_KEEP_COMMENTS"
)

// applyEnv overlays UNTEX_* environment variables onto cfg.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv(envColor); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envPart); v != "" {
		cfg.Highlight.Part = config.Part(v)
	}
	if v := os.Getenv(envForeground); v != "" {
		cfg.Highlight.Style.Foreground = v
	}
	if v := os.Getenv(envBackground); v != "" {
		cfg.Highlight.Style.Background = v
	}
	if isTruthy(os.Getenv(envAutoIndent)) {
		cfg.Format.AutoIndent = true
	}
	if isTruthy(os.Getenv(envKeepComments)) {
		cfg.Format.KeepComments = true
	}
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
