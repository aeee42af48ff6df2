// Package lexer provides a single-pass tokenizer for LaTeX source text.
// It produces a contiguous, non-overlapping token stream covering
// [0, len(source)): every byte of the input belongs to exactly one token,
// and unmatched input falls back to the generic Other class, so
// tokenization never fails.
package lexer

import (
	"unicode/utf8"

	"github.com/jeertmans/untex/pkg/latex/token"
)

// Lexer scans a source text left to right, producing one spanned token per
// call to Next. It holds no state besides its cursor and is read-only with
// respect to the source.
type Lexer struct {
	source string
	pos    int
}

// New returns a lexer positioned at the start of source.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Tokenize scans the whole source at once.
func Tokenize(source string) []token.SpannedToken {
	if len(source) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	tokens := make([]token.SpannedToken, 0, len(source)/initialCapacityDivisor)

	lex := New(source)
	for {
		st, ok := lex.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, st)
	}
}

// Next implements token.Stream. Classification is longest-match-first;
// ties are broken by declared priority (e.g. '$$' over '$', '\documentclass'
// and '\begin{...}' over a generic command name).
func (l *Lexer) Next() (token.SpannedToken, bool) {
	if l.pos >= len(l.source) {
		return token.SpannedToken{}, false
	}

	start := l.pos

	switch c := l.source[l.pos]; {
	case c == '\\':
		return l.scanBackslash(), true
	case c == '%':
		return l.scanComment(), true
	case c == '$':
		l.pos++
		if l.pos < len(l.source) && l.source[l.pos] == '$' {
			l.pos++
			return l.emit(token.KindDoubleDollarSign, start), true
		}
		return l.emit(token.KindDollarSign, start), true
	case c == '\n':
		l.pos++
		return l.emit(token.KindNewline, start), true
	case c == '\r':
		if l.pos+1 < len(l.source) && l.source[l.pos+1] == '\n' {
			l.pos += 2
			return l.emit(token.KindNewline, start), true
		}
		return l.scanOther(), true
	case c == ' ' || c == '\t':
		for l.pos < len(l.source) && (l.source[l.pos] == ' ' || l.source[l.pos] == '\t') {
			l.pos++
		}
		return l.emit(token.KindTabsOrSpaces, start), true
	case isLetter(c):
		for l.pos < len(l.source) && isLetter(l.source[l.pos]) {
			l.pos++
		}
		return l.emit(token.KindWord, start), true
	case isDigit(c):
		for l.pos < len(l.source) && isDigit(l.source[l.pos]) {
			l.pos++
		}
		return l.emit(token.KindNumber, start), true
	default:
		if kind, ok := punctuationKind(c); ok {
			l.pos++
			return l.emit(kind, start), true
		}
		return l.scanOther(), true
	}
}

// scanBackslash classifies every lexeme introduced by a backslash: command
// names, environment delimiters, escaped characters, math delimiters,
// spacing commands, and invalid commands.
func (l *Lexer) scanBackslash() token.SpannedToken {
	start := l.pos
	l.pos++ // consume '\'

	if l.pos >= len(l.source) {
		// Lone backslash at end of input matches no rule.
		return l.emit(token.KindOther, start)
	}

	c := l.source[l.pos]

	if isLetter(c) {
		for l.pos < len(l.source) && isLetter(l.source[l.pos]) {
			l.pos++
		}
		name := l.source[start+1 : l.pos]

		switch name {
		case "documentclass":
			return l.emit(token.KindDocumentClass, start)
		case "begin":
			if env, ok := l.scanEnvironmentName(); ok {
				st := l.emit(token.KindEnvironmentBegin, start)
				st.Token.Name = env
				return st
			}
		case "end":
			if env, ok := l.scanEnvironmentName(); ok {
				st := l.emit(token.KindEnvironmentEnd, start)
				st.Token.Name = env
				return st
			}
		}
		return l.emit(token.KindCommandName, start)
	}

	l.pos++ // consume the escaped character
	switch c {
	case '\\':
		return l.emit(token.KindDoubleBackslash, start)
	case '{', '}', '_', '$', '&', '%', '#':
		return l.emit(token.KindEscapedChar, start)
	case ',', ':', ';', '!', ' ':
		return l.emit(token.KindInsertSpace, start)
	case '(':
		return l.emit(token.KindInlineMathOpen, start)
	case ')':
		return l.emit(token.KindInlineMathClose, start)
	case '[':
		return l.emit(token.KindDisplayMathOpen, start)
	case ']':
		return l.emit(token.KindDisplayMathClose, start)
	default:
		return l.emit(token.KindInvalidCommand, start)
	}
}

// scanEnvironmentName tries to consume `{name}` where name is one or more
// letters with an optional trailing star. On failure the cursor is left
// untouched so the preceding `\begin`/`\end` falls back to a command name.
func (l *Lexer) scanEnvironmentName() (string, bool) {
	pos := l.pos
	if pos >= len(l.source) || l.source[pos] != '{' {
		return "", false
	}
	pos++

	nameStart := pos
	for pos < len(l.source) && isLetter(l.source[pos]) {
		pos++
	}
	if pos == nameStart {
		return "", false
	}
	if pos < len(l.source) && l.source[pos] == '*' {
		pos++
	}
	if pos >= len(l.source) || l.source[pos] != '}' {
		return "", false
	}

	name := l.source[nameStart:pos]
	l.pos = pos + 1
	return name, true
}

// scanComment consumes '%' through end of line, exclusive of the newline.
func (l *Lexer) scanComment() token.SpannedToken {
	start := l.pos
	for l.pos < len(l.source) && l.source[l.pos] != '\n' {
		l.pos++
	}
	return l.emit(token.KindComment, start)
}

// scanOther consumes a single rune as the fallback class.
func (l *Lexer) scanOther() token.SpannedToken {
	start := l.pos
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	return l.emit(token.KindOther, start)
}

func (l *Lexer) emit(kind token.Kind, start int) token.SpannedToken {
	return token.SpannedToken{
		Token: token.Token{Kind: kind},
		Span:  token.Span{Start: start, End: l.pos},
	}
}

// punctuationKind maps single-character punctuation to its token kind.
func punctuationKind(c byte) (token.Kind, bool) {
	switch c {
	case '&':
		return token.KindAnd, true
	case '*':
		return token.KindAsterisk, true
	case '@':
		return token.KindAt, true
	case '{':
		return token.KindBraceOpen, true
	case '}':
		return token.KindBraceClose, true
	case '[':
		return token.KindBracketOpen, true
	case ']':
		return token.KindBracketClose, true
	case ':':
		return token.KindColon, true
	case ',':
		return token.KindComma, true
	case '.':
		return token.KindDot, true
	case '=':
		return token.KindEqualSign, true
	case '!':
		return token.KindExclamationMark, true
	case '#':
		return token.KindHash, true
	case '^':
		return token.KindHat, true
	case '-':
		return token.KindHyphen, true
	case '(':
		return token.KindParenOpen, true
	case ')':
		return token.KindParenClose, true
	case '+':
		return token.KindPlusSign, true
	case '?':
		return token.KindQuestionMark, true
	case ';':
		return token.KindSemicolon, true
	case '~':
		return token.KindTilde, true
	case '_':
		return token.KindUnderscore, true
	default:
		return token.KindOther, false
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
