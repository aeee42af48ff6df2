package cli

import (
	"bytes"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/pkg/fsutil"
	"github.com/jeertmans/untex/pkg/latex/format"
	"github.com/jeertmans/untex/pkg/latex/lexer"
	"github.com/jeertmans/untex/pkg/latex/token"
)

// errWriteStdin is returned when --write is combined with stdin input.
var errWriteStdin = errors.New("cannot write in place when reading from stdin")

type formatFlags struct {
	autoIndent   bool
	keepComments bool
	write        bool
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:     "format [flags] [filenames...]",
		Aliases: []string{"fmt"},
		Short:   "Pretty format TeX documents",
		Long: `Pretty format TeX documents.

By default, comments are stripped and the result is printed to standard
output. With --auto-indent, the leading whitespace of each line is rewritten
to two spaces per environment nesting level inside the document body.

Examples:
  untex format main.tex                # Strip comments to stdout
  untex format --auto-indent main.tex
  untex fmt --auto-indent -w main.tex  # Rewrite the file in place`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.autoIndent, "auto-indent", false,
		"rewrite leading whitespace based on environment nesting")
	cmd.Flags().BoolVar(&flags.keepComments, "keep-comments", false,
		"keep comment tokens instead of dropping them")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false,
		"write the result back to the source file instead of stdout")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("auto-indent") {
		cfg.Format.AutoIndent = flags.autoIndent
	}
	if cmd.Flags().Changed("keep-comments") {
		cfg.Format.KeepComments = flags.keepComments
	}

	if flags.write && len(args) == 0 {
		return errWriteStdin
	}

	ctx := cmd.Context()
	sources, err := readSources(ctx, args)
	if err != nil {
		return err
	}

	logger.Debug("formatting",
		logging.FieldFiles, len(sources),
		logging.FieldAutoIndent, cfg.Format.AutoIndent,
		logging.FieldWrite, flags.write,
	)

	for _, src := range sources {
		var stream token.Stream = lexer.New(src.Content)
		if !cfg.Format.KeepComments {
			stream = format.StripComments(stream)
		}
		if cfg.Format.AutoIndent {
			stream = format.AutoIndent(stream)
		}

		if !flags.write {
			if err := format.Write(stream, src.Content, os.Stdout); err != nil {
				return err
			}
			continue
		}

		var buf bytes.Buffer
		if err := format.Write(stream, src.Content, &buf); err != nil {
			return err
		}
		written, err := fsutil.WriteAtomicIfChanged(ctx, src.Path, buf.Bytes(), src.Mode)
		if err != nil {
			return err
		}
		logger.Debug("formatted",
			logging.FieldPath, src.Path,
			logging.FieldModified, written,
		)
	}
	return nil
}
