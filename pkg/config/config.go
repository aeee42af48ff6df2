// Package config defines the untex configuration model. Configuration only
// carries CLI-boundary defaults (colors, formatting options); the token
// stream core takes every knob as an explicit argument.
package config

import (
	"fmt"
)

// ColorMode controls when output is colorized.
type ColorMode string

// Valid color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Part names a highlightable region of a document.
type Part string

// Valid highlight parts.
const (
	PartMath        Part = "math"
	PartPreamble    Part = "preamble"
	PartDocument    Part = "document"
	PartInlineMath  Part = "inline-math"
	PartDisplayMath Part = "display-math"
)

// Parts lists the valid highlight parts in display order.
func Parts() []Part {
	return []Part{PartMath, PartPreamble, PartDocument, PartInlineMath, PartDisplayMath}
}

// Valid reports whether the part names a known highlighter.
func (p Part) Valid() bool {
	for _, part := range Parts() {
		if p == part {
			return true
		}
	}
	return false
}

// Config is the resolved untex configuration.
type Config struct {
	// Color controls when output is colorized: auto, always, or never.
	Color ColorMode `yaml:"color,omitempty"`

	// Highlight holds defaults for the highlight command.
	Highlight HighlightConfig `yaml:"highlight,omitempty"`

	// Format holds defaults for the format command.
	Format FormatConfig `yaml:"format,omitempty"`
}

// HighlightConfig holds the default highlighted part and the style applied
// to highlighted tokens.
type HighlightConfig struct {
	// Part is the default part to highlight.
	Part Part `yaml:"part,omitempty"`

	// Style describes how highlighted tokens are rendered.
	Style StyleConfig `yaml:"style,omitempty"`
}

// StyleConfig is the opaque style descriptor consumed by the renderer.
type StyleConfig struct {
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}

// FormatConfig holds defaults for the format command.
type FormatConfig struct {
	// AutoIndent rewrites leading whitespace based on environment nesting.
	AutoIndent bool `yaml:"auto_indent,omitempty"`

	// KeepComments retains comment tokens instead of dropping them.
	KeepComments bool `yaml:"keep_comments,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Color: ColorAuto,
		Highlight: HighlightConfig{
			Part:  PartMath,
			Style: StyleConfig{Foreground: "red"},
		},
	}
}

// Validate checks that every enumerated field holds a known value.
func (c *Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}

	if c.Highlight.Part != "" && !c.Highlight.Part.Valid() {
		return fmt.Errorf("invalid highlight part %q", c.Highlight.Part)
	}
	return nil
}
