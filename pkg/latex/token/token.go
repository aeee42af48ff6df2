// Package token defines the lexical token model shared by every LaTeX
// token-stream component: the tokenizer, the highlighters, and the formatters.
package token

// Kind classifies the type of a token in the LaTeX source.
type Kind uint8

// Token kinds cover every byte in the source. Most kinds are single
// punctuation or keyword classes; EnvironmentBegin and EnvironmentEnd carry
// the environment name, and OwnedString carries synthetic text produced by
// formatters that is not backed by any span of the source.
const (
	KindOther Kind = iota // fallback class, one rune at a time

	KindAnd              // '&'
	KindAsterisk         // '*'
	KindAt               // '@'
	KindBraceOpen        // '{'
	KindBraceClose       // '}'
	KindBracketOpen      // '['
	KindBracketClose     // ']'
	KindColon            // ':'
	KindComma            // ','
	KindCommandName      // '\' + letters
	KindComment          // '%' through end of line
	KindDisplayMathOpen  // '\['
	KindDisplayMathClose // '\]'
	KindDocumentClass    // '\documentclass'
	KindDollarSign       // '$'
	KindDot              // '.'
	KindDoubleBackslash  // '\\'
	KindDoubleDollarSign // '$$'
	KindEnvironmentBegin // '\begin{name}'
	KindEnvironmentEnd   // '\end{name}'
	KindEqualSign        // '='
	KindEscapedChar      // '\' + one of { } _ $ & % #
	KindExclamationMark  // '!'
	KindHash             // '#'
	KindHat              // '^'
	KindHyphen           // '-'
	KindInlineMathOpen   // '\('
	KindInlineMathClose  // '\)'
	KindInsertSpace      // '\' + one of , : ; ! space
	KindInvalidCommand   // '\' + other non-letter
	KindNewline          // '\n' or '\r\n'
	KindNumber           // digit run
	KindOwnedString      // synthetic formatter output
	KindParenOpen        // '('
	KindParenClose       // ')'
	KindPlusSign         // '+'
	KindQuestionMark     // '?'
	KindSemicolon        // ';'
	KindTabsOrSpaces     // run of tabs and spaces
	KindTilde            // '~'
	KindUnderscore       // '_'
	KindWord             // letter run
)

// KindMinusSign is an alias for KindHyphen, preferred in math mode.
const KindMinusSign = KindHyphen

// Span is a half-open byte range [Start, End) into the original source text.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Token is a classified lexical unit. Name is set only for
// KindEnvironmentBegin and KindEnvironmentEnd; Text is set only for
// KindOwnedString. All other kinds are fully described by their Kind and
// resolve to a slice of the source via their span.
type Token struct {
	Kind Kind

	// Name is the environment name, e.g. "align*" for `\begin{align*}`.
	Name string

	// Text is the owned payload of a synthetic token.
	Text string
}

// EnvironmentBegin returns an environment-begin token with the given name.
func EnvironmentBegin(name string) Token {
	return Token{Kind: KindEnvironmentBegin, Name: name}
}

// EnvironmentEnd returns an environment-end token with the given name.
func EnvironmentEnd(name string) Token {
	return Token{Kind: KindEnvironmentEnd, Name: name}
}

// OwnedString returns a synthetic token carrying owned text.
func OwnedString(text string) Token {
	return Token{Kind: KindOwnedString, Text: text}
}

// SpannedToken pairs a token with its span in the source. Synthetic
// (OwnedString) tokens carry a placeholder span that must not be resolved
// against the source.
type SpannedToken struct {
	Token Token
	Span  Span
}

// Resolve returns the text this token stands for: the owned payload for
// synthetic tokens, the source slice denoted by the span otherwise.
func (st SpannedToken) Resolve(source string) string {
	if st.Token.Kind == KindOwnedString {
		return st.Token.Text
	}
	return source[st.Span.Start:st.Span.End]
}

// Validate checks that a token slice partitions [0, sourceLen):
// spans are contiguous, non-overlapping, and cover the full range.
func Validate(tokens []SpannedToken, sourceLen int) bool {
	if len(tokens) == 0 {
		return sourceLen == 0
	}
	if tokens[0].Span.Start != 0 {
		return false
	}
	if tokens[len(tokens)-1].Span.End != sourceLen {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Span.Start != tokens[i-1].Span.End {
			return false
		}
	}
	return true
}
