// Package deps discovers the file dependencies of a LaTeX document. It walks
// the token stream of a .tex file, inspects command-name tokens for
// include-style directives, and recursively resolves the referenced files
// into a dependency tree.
package deps

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	enry "github.com/go-enry/go-enry/v2"

	"github.com/jeertmans/untex/internal/logging"
	"github.com/jeertmans/untex/pkg/latex/lexer"
	"github.com/jeertmans/untex/pkg/latex/token"
)

// Kind classifies a dependency by the role it plays in the document.
type Kind int

// Dependency kinds, in display order.
const (
	KindTeX Kind = iota + 1
	KindImage
	KindListing
	KindOther
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTeX:
		return "TeX"
	case KindImage:
		return "Image"
	case KindListing:
		return "Listing"
	default:
		return "Other"
	}
}

// Dependency is a node of the dependency tree rooted at a .tex file.
type Dependency struct {
	// Path is the dependency path as written in the document, with the
	// directive's default extension applied when none was given.
	Path string

	// Kind classifies the dependency.
	Kind Kind

	// Language is the detected language of listing dependencies, when known.
	Language string

	// Children are the dependencies discovered inside this file.
	// Only .tex files are scanned recursively.
	Children []*Dependency
}

// directive describes one include-style command and how to extract its
// file argument from the source following the command name.
type directive struct {
	arg        *regexp.Regexp
	defaultExt string
	kind       Kind
}

// Directive arguments are matched against the source immediately after the
// command-name token: an optional bracket group, then the brace-delimited
// path. `\inputminted` takes the language as a first brace group.
var directives = map[string]directive{
	`\input`:           {regexp.MustCompile(`^\{([^}]*)\}`), "tex", KindTeX},
	`\include`:         {regexp.MustCompile(`^\{([^}]*)\}`), "tex", KindTeX},
	`\includegraphics`: {regexp.MustCompile(`^(?:\[[^\]]*\])?\{([^}]*)\}`), "pdf", KindImage},
	`\bibliography`:    {regexp.MustCompile(`^\{([^}]*)\}`), "bib", KindOther},
	`\lstinputlisting`: {regexp.MustCompile(`^(?:\[[^\]]*\])?\{([^}]*)\}`), "txt", KindListing},
	`\inputminted`:     {regexp.MustCompile(`^\{[^}]*\}\{([^}]*)\}`), "txt", KindListing},
}

// imageExtensions classify referenced files as images.
var imageExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".pdf": true, ".svg": true,
}

// Scan reads the given .tex file and returns its dependency tree. The
// root's directory anchors every relative path in the tree. Files that
// cannot be read still appear as leaves; only a failure to read the root
// itself is an error.
func Scan(ctx context.Context, path string) (*Dependency, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mainDir := filepath.Dir(path)
	visited := map[string]bool{filepath.Clean(path): true}

	root := &Dependency{Path: path, Kind: KindTeX}
	root.Children = scanSource(ctx, string(source), mainDir, visited)
	return root, nil
}

// scanSource walks the token stream of one file and resolves the discovered
// dependencies, recursing into .tex files.
func scanSource(ctx context.Context, source, mainDir string, visited map[string]bool) []*Dependency {
	logger := logging.FromContext(ctx)

	var children []*Dependency
	lex := lexer.New(source)
	for {
		st, ok := lex.Next()
		if !ok {
			return children
		}
		if st.Token.Kind != token.KindCommandName {
			continue
		}

		dir, ok := directives[st.Resolve(source)]
		if !ok {
			continue
		}
		m := dir.arg.FindStringSubmatch(source[st.Span.End:])
		if m == nil {
			continue
		}

		path := withDefaultExtension(m[1], dir.defaultExt)
		child := &Dependency{Path: path, Kind: classify(path, dir.kind)}

		full := path
		if !filepath.IsAbs(full) {
			full = filepath.Join(mainDir, full)
		}
		full = filepath.Clean(full)

		switch child.Kind {
		case KindTeX:
			if visited[full] {
				logger.Debug("skipping already visited dependency", logging.FieldPath, full)
				break
			}
			visited[full] = true
			content, err := os.ReadFile(full)
			if err != nil {
				logger.Debug("cannot read dependency", logging.FieldPath, full, logging.FieldError, err)
				break
			}
			child.Children = scanSource(ctx, string(content), mainDir, visited)
		case KindListing, KindOther:
			child.Language = detectLanguage(full)
		}

		children = append(children, child)
	}
}

// detectLanguage labels a listing file by its language, best effort.
func detectLanguage(path string) string {
	content, _ := os.ReadFile(path)
	return enry.GetLanguage(filepath.Base(path), content)
}

// classify refines a directive's kind from the resolved path extension,
// so `\includegraphics{diagram.svg}` and `\input{chapter}` keep their
// directive kinds while unknown extensions degrade to Other.
func classify(path string, kind Kind) Kind {
	ext := filepath.Ext(path)
	switch {
	case ext == ".tex":
		return KindTeX
	case imageExtensions[ext]:
		return KindImage
	case kind == KindListing:
		return KindListing
	default:
		return KindOther
	}
}

// withDefaultExtension appends ext when path has no extension.
func withDefaultExtension(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + "." + ext
	}
	return path
}

// GroupByKind returns this node's children grouped by kind, in kind order.
// Groups are used by the tree printer to cluster dependencies of one file.
func (d *Dependency) GroupByKind() map[Kind][]*Dependency {
	groups := make(map[Kind][]*Dependency)
	for _, child := range d.Children {
		groups[child.Kind] = append(groups[child.Kind], child)
	}
	return groups
}

// Kinds returns the kinds present among this node's children, sorted in
// display order.
func (d *Dependency) Kinds() []Kind {
	seen := make(map[Kind]bool)
	var kinds []Kind
	for _, child := range d.Children {
		if !seen[child.Kind] {
			seen[child.Kind] = true
			kinds = append(kinds, child.Kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
