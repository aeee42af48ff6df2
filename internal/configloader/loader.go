// Package configloader resolves the untex configuration: an upward search
// for a project config file, an environment variable overlay, and defaults.
// CLI flags are applied last by the command layer and take precedence over
// everything loaded here.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/pkg/config"
)

// Project config file names, probed in order in each directory.
var configFileNames = []string{".untex.yml", ".untex.yaml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from for a project
	// config. Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing file
	// is an error.
	ExplicitPath string

	// IgnoreEnv skips the UNTEX_* environment overlay.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and its provenance.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, if any.
	LoadedFrom string
}

// Load resolves the final configuration.
// Precedence (highest to lowest): environment variables (UNTEX_*), the
// explicit or discovered config file, defaults.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{Config: config.Default()}

	path := opts.ExplicitPath
	if path == "" {
		path = discover(workDir)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if opts.ExplicitPath != "" {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			logger.Debug("cannot read discovered config", logging.FieldPath, path, logging.FieldError, err)
		} else {
			loaded, err := config.FromYAML(data)
			if err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
			merge(result.Config, loaded)
			result.LoadedFrom = path
			logger.Debug("loaded config", logging.FieldPath, path)
		}
	}

	if !opts.IgnoreEnv {
		applyEnv(result.Config)
	}

	if err := result.Config.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// discover walks upward from dir looking for a project config file.
func discover(dir string) string {
	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// merge overlays the non-zero fields of src onto dst.
func merge(dst, src *config.Config) {
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Highlight.Part != "" {
		dst.Highlight.Part = src.Highlight.Part
	}
	if src.Highlight.Style != (config.StyleConfig{}) {
		dst.Highlight.Style = src.Highlight.Style
	}
	dst.Format.AutoIndent = dst.Format.AutoIndent || src.Format.AutoIndent
	dst.Format.KeepComments = dst.Format.KeepComments || src.Format.KeepComments
}
