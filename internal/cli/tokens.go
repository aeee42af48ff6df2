package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/internal/ui/pretty"
	"github.com/jeertmans/untex/pkg/latex/lexer"
	"github.com/jeertmans/untex/pkg/latex/token"
)

// defaultTermWidth bounds the token text column when the terminal width is
// unknown (e.g. piped output).
const defaultTermWidth = 100

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [filenames...]",
		Short: "Print the token stream of TeX documents",
		Long: `Print the token stream of TeX documents, one token per line:
the byte span, the token kind, the environment name for environment tokens,
and the source text.

Useful for inspecting how a document is classified, and for picking a kind
to pass to 'untex highlight --token'.`,
		Args: cobra.ArbitraryArgs,
		RunE: runTokens,
	}
	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sources, err := readSources(cmd.Context(), args)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))

	width := defaultTermWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	for _, src := range sources {
		tokens := lexer.Tokenize(src.Content)

		logger.Debug("tokenized",
			logging.FieldPath, src.Path,
			logging.FieldSourceBytes, len(src.Content),
			logging.FieldTokensTotal, len(tokens),
		)

		for _, st := range tokens {
			printToken(st, src.Content, styles, width)
		}
	}
	return nil
}

func printToken(st token.SpannedToken, source string, styles *pretty.Styles, width int) {
	location := fmt.Sprintf("%-12s", fmt.Sprintf("%d..%d", st.Span.Start, st.Span.End))
	kind := fmt.Sprintf("%-20s", st.Token.Kind)

	line := styles.Location.Render(location) + " " + styles.KindName.Render(kind)
	used := len(location) + 1 + len(kind)

	if st.Token.Name != "" {
		payload := "{" + st.Token.Name + "}"
		line += " " + styles.Payload.Render(payload)
		used += 1 + len(payload)
	}

	text := truncateToWidth(strconv.Quote(st.Resolve(source)), width-used-2)
	fmt.Fprintln(os.Stdout, line+" "+text)
}

// truncateToWidth shortens text to at most max bytes plus an ellipsis.
// Quoted text keeps printable non-ASCII runes unescaped, so the cut must
// land on a rune boundary.
func truncateToWidth(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	end := 0
	for i := range text {
		if i > max {
			break
		}
		end = i
	}
	return text[:end] + "…"
}
