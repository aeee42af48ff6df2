package token

import (
	"fmt"
	"sort"
	"strings"
)

// kindNames maps each kind to its canonical kebab-case name, used by the
// CLI `--token` flag and diagnostic output.
var kindNames = map[Kind]string{
	KindOther:            "other",
	KindAnd:              "and",
	KindAsterisk:         "asterisk",
	KindAt:               "at",
	KindBraceOpen:        "brace-open",
	KindBraceClose:       "brace-close",
	KindBracketOpen:      "bracket-open",
	KindBracketClose:     "bracket-close",
	KindColon:            "colon",
	KindComma:            "comma",
	KindCommandName:      "command-name",
	KindComment:          "comment",
	KindDisplayMathOpen:  "display-math-open",
	KindDisplayMathClose: "display-math-close",
	KindDocumentClass:    "document-class",
	KindDollarSign:       "dollar-sign",
	KindDot:              "dot",
	KindDoubleBackslash:  "double-backslash",
	KindDoubleDollarSign: "double-dollar-sign",
	KindEnvironmentBegin: "environment-begin",
	KindEnvironmentEnd:   "environment-end",
	KindEqualSign:        "equal-sign",
	KindEscapedChar:      "escaped-char",
	KindExclamationMark:  "exclamation-mark",
	KindHash:             "hash",
	KindHat:              "hat",
	KindHyphen:           "hyphen",
	KindInlineMathOpen:   "inline-math-open",
	KindInlineMathClose:  "inline-math-close",
	KindInsertSpace:      "insert-space",
	KindInvalidCommand:   "invalid-command",
	KindNewline:          "newline",
	KindNumber:           "number",
	KindOwnedString:      "owned-string",
	KindParenOpen:        "paren-open",
	KindParenClose:       "paren-close",
	KindPlusSign:         "plus-sign",
	KindQuestionMark:     "question-mark",
	KindSemicolon:        "semicolon",
	KindTabsOrSpaces:     "tabs-or-spaces",
	KindTilde:            "tilde",
	KindUnderscore:       "underscore",
	KindWord:             "word",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind parses a kind name as produced by Kind.String.
// Matching is case-insensitive and accepts underscores for hyphens.
func ParseKind(s string) (Kind, error) {
	want := strings.ReplaceAll(strings.ToLower(s), "_", "-")
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}
	return KindOther, fmt.Errorf("unknown token kind %q", s)
}

// KindNames returns the canonical names of all kinds, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, name := range kindNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
