package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jeertmans/untex/pkg/fsutil"
)

// source is one document to process: a file, or standard input when Path
// is empty.
type source struct {
	Path    string
	Content string
	Mode    os.FileMode
}

// readSources reads the given files, or standard input when no filename is
// provided.
func readSources(ctx context.Context, filenames []string) ([]source, error) {
	if len(filenames) == 0 {
		content, err := readStdin()
		if err != nil {
			return nil, err
		}
		return []source{{Content: content}}, nil
	}

	sources := make([]source, 0, len(filenames))
	for _, filename := range filenames {
		content, mode, err := fsutil.ReadFile(ctx, filename)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{Path: filename, Content: string(content), Mode: mode})
	}
	return sources, nil
}

// readStdin reads standard input to the end, hinting interactive users how
// to terminate their input.
func readStdin() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "Reading from STDIN, press [CTRL+D] when you're done.")
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(content), nil
}
