package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/internal/ui/pretty"
	"github.com/jeertmans/untex/pkg/latex/deps"
)

func newDepsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dependencies <filename>",
		Aliases: []string{"deps"},
		Short:   "Print the dependency tree of a TeX document",
		Long: `Print the dependency tree of a TeX document.

Walks the document's token stream for include-style directives (\input,
\include, \includegraphics, \bibliography, \lstinputlisting, \inputminted)
and recursively resolves the referenced files. Dependencies of each file are
grouped by kind.`,
		Args: cobra.ExactArgs(1),
		RunE: runDeps,
	}
	return cmd
}

func runDeps(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	root, err := deps.Scan(ctx, args[0])
	if err != nil {
		return err
	}

	logger.Debug("scanned dependencies",
		logging.FieldPath, args[0],
		logging.FieldDependencies, len(root.Children),
	)

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))
	fmt.Fprintln(os.Stdout, pretty.DependencyTree(root, styles))
	return nil
}
