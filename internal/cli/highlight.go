package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/internal/ui/pretty"
	"github.com/jeertmans/untex/pkg/config"
	"github.com/jeertmans/untex/pkg/latex/highlight"
	"github.com/jeertmans/untex/pkg/latex/lexer"
	"github.com/jeertmans/untex/pkg/latex/token"
)

type highlightFlags struct {
	part          string
	token         string
	fg            string
	bg            string
	bold          bool
	faint         bool
	italic        bool
	underline     bool
	strikethrough bool
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:     "highlight [flags] [filenames...]",
		Aliases: []string{"hl"},
		Short:   "Highlight parts of TeX documents",
		Long: `Highlight parts of TeX documents in a given color.

Highlights either a document part (--part) or every token of a given kind
(--token). Without filenames, reads the document from standard input.

Examples:
  untex highlight main.tex                 # Highlight math mode (default)
  untex highlight --part preamble main.tex
  untex highlight --token comment main.tex
  cat main.tex | untex hl --part document`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	parts := make([]string, 0, len(config.Parts()))
	for _, p := range config.Parts() {
		parts = append(parts, string(p))
	}

	cmd.Flags().StringVarP(&flags.part, "part", "p", "",
		"part to highlight: "+strings.Join(parts, ", "))
	cmd.Flags().StringVarP(&flags.token, "token", "t", "",
		"token kind to highlight (see `untex tokens` for kinds)")
	cmd.MarkFlagsMutuallyExclusive("part", "token")

	cmd.Flags().StringVar(&flags.fg, "fg", "", "foreground color of highlighted tokens")
	cmd.Flags().StringVar(&flags.bg, "bg", "", "background color of highlighted tokens")
	cmd.Flags().BoolVar(&flags.bold, "bold", false, "render highlighted tokens bold")
	cmd.Flags().BoolVar(&flags.faint, "faint", false, "render highlighted tokens faint")
	cmd.Flags().BoolVar(&flags.italic, "italic", false, "render highlighted tokens italicized")
	cmd.Flags().BoolVar(&flags.underline, "underline", false, "render highlighted tokens underlined")
	cmd.Flags().BoolVar(&flags.strikethrough, "strikethrough", false, "render highlighted tokens struck through")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyHighlightFlags(cmd, cfg, flags)

	var kind token.Kind
	byKind := flags.token != ""
	if byKind {
		kind, err = token.ParseKind(flags.token)
		if err != nil {
			return err
		}
	} else if !cfg.Highlight.Part.Valid() {
		return fmt.Errorf("invalid highlight part %q", cfg.Highlight.Part)
	}

	ctx := cmd.Context()
	sources, err := readSources(ctx, args)
	if err != nil {
		return err
	}

	style := lipgloss.NewStyle()
	if pretty.IsColorEnabled(cfg.Color, os.Stdout) {
		style = pretty.HighlightStyle(cfg.Highlight.Style)
	}

	logger.Debug("highlighting",
		logging.FieldFiles, len(sources),
		logging.FieldPart, cfg.Highlight.Part,
		logging.FieldToken, flags.token,
	)

	for _, src := range sources {
		lex := lexer.New(src.Content)

		var h highlight.Highlighter
		if byKind {
			h = highlight.NewKind(lex, kind)
		} else {
			h = partHighlighter(cfg.Highlight.Part, lex)
		}

		if err := highlight.WriteColorized(h, src.Content, os.Stdout, style); err != nil {
			return err
		}
	}
	return nil
}

// applyHighlightFlags overlays explicitly set command flags onto the
// resolved configuration.
func applyHighlightFlags(cmd *cobra.Command, cfg *config.Config, flags *highlightFlags) {
	if flags.part != "" {
		cfg.Highlight.Part = config.Part(flags.part)
	}
	if cmd.Flags().Changed("fg") {
		cfg.Highlight.Style.Foreground = flags.fg
	}
	if cmd.Flags().Changed("bg") {
		cfg.Highlight.Style.Background = flags.bg
	}
	if cmd.Flags().Changed("bold") {
		cfg.Highlight.Style.Bold = flags.bold
	}
	if cmd.Flags().Changed("faint") {
		cfg.Highlight.Style.Faint = flags.faint
	}
	if cmd.Flags().Changed("italic") {
		cfg.Highlight.Style.Italic = flags.italic
	}
	if cmd.Flags().Changed("underline") {
		cfg.Highlight.Style.Underline = flags.underline
	}
	if cmd.Flags().Changed("strikethrough") {
		cfg.Highlight.Style.Strikethrough = flags.strikethrough
	}
}

// partHighlighter builds the state machine for a document part.
func partHighlighter(part config.Part, s token.Stream) highlight.Highlighter {
	switch part {
	case config.PartPreamble:
		return highlight.NewPreamble(s)
	case config.PartDocument:
		return highlight.NewDocument(s)
	case config.PartInlineMath:
		return highlight.NewInlineMath(s)
	case config.PartDisplayMath:
		return highlight.NewDisplayMath(s)
	default:
		return highlight.NewMath(s)
	}
}
