// Package cli provides the Cobra command structure for untex.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jeertmans/untex/internal/configloader"
	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root untex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "untex",
		Short: "TeX files manipulations made easy",
		Long: `untex is a command-line tool for manipulating TeX and LaTeX documents.

It tokenizes documents into a lossless token stream and builds on it to
highlight parts of a document (math, preamble, document body, or a single
token kind), pretty-format documents (comment stripping and automatic
indentation), and print the dependency tree of a document.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newDepsCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig resolves the configuration for a command invocation, applying
// the root --config and --color flags on top of discovered configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	cfg := result.Config
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, err
		}
		cfg.Color = config.ColorMode(color)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
