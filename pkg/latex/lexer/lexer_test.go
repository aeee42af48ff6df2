package lexer

import (
	"strings"
	"testing"

	"github.com/jeertmans/untex/pkg/latex/token"
)

// assertTokenPositions checks that the tokens of the given kind appear at
// exactly the expected spans, in order.
func assertTokenPositions(t *testing.T, source string, kind token.Kind, want ...token.Span) {
	t.Helper()

	var got []token.Span
	for _, st := range Tokenize(source) {
		if st.Token.Kind == kind {
			got = append(got, st.Span)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("found %d %v tokens, want %d: %v", len(got), kind, len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%v token[%d] at %v, want %v", kind, i, got[i], want[i])
		}
	}
}

func span(start, end int) token.Span { return token.Span{Start: start, End: end} }

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
}

func TestTokenize_Punctuation(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   token.Kind
		spans  []token.Span
	}{
		{"and", `Should match &, but not \&`, token.KindAnd, []token.Span{span(13, 14)}},
		{"asterisk", `\section*{title} Doing some math $a * b$`, token.KindAsterisk, []token.Span{span(8, 9), span(36, 37)}},
		{"at", `Should match @, but not \@`, token.KindAt, []token.Span{span(13, 14)}},
		{"brace close", `Should match }, but not \}`, token.KindBraceClose, []token.Span{span(13, 14)}},
		{"brace open", `Should match {, but not \{`, token.KindBraceOpen, []token.Span{span(13, 14)}},
		{"bracket close", `Should match ], but not \]`, token.KindBracketClose, []token.Span{span(13, 14)}},
		{"bracket open", `Should match [, but not \[`, token.KindBracketOpen, []token.Span{span(13, 14)}},
		{"colon", `Should match :, but not \:`, token.KindColon, []token.Span{span(13, 14)}},
		{"comma", `Should match , but not \,`, token.KindComma, []token.Span{span(13, 14)}},
		{"dot", `Should match ., but not \.`, token.KindDot, []token.Span{span(13, 14)}},
		{"equal sign", `Should match =, but not \=`, token.KindEqualSign, []token.Span{span(13, 14)}},
		{"hash", `Should match #, but not \#`, token.KindHash, []token.Span{span(13, 14)}},
		{"hat", `Should match ^`, token.KindHat, []token.Span{span(13, 14)}},
		{"hyphen", `Should match -, but not \-`, token.KindHyphen, []token.Span{span(13, 14)}},
		{"paren close", `Should match ), but not \)`, token.KindParenClose, []token.Span{span(13, 14)}},
		{"paren open", `Should match (, but not \(`, token.KindParenOpen, []token.Span{span(13, 14)}},
		{"plus sign", `Should match +, but not \+`, token.KindPlusSign, []token.Span{span(13, 14)}},
		{"question mark", `Should match ?, but not \?`, token.KindQuestionMark, []token.Span{span(13, 14)}},
		{"semicolon", `Should match ;, but not \;`, token.KindSemicolon, []token.Span{span(13, 14)}},
		{"tilde", `Should match ~`, token.KindTilde, []token.Span{span(13, 14)}},
		{"underscore", `Should match _, but not \_`, token.KindUnderscore, []token.Span{span(13, 14)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokenPositions(t, tt.source, tt.kind, tt.spans...)
		})
	}
}

func TestTokenize_CommandName(t *testing.T) {
	assertTokenPositions(t, `\sin\cos\text{some text}\alpha1234`, token.KindCommandName,
		span(0, 4), span(4, 8), span(8, 13), span(24, 30))
}

func TestTokenize_Comment(t *testing.T) {
	source := "% this is a comment\n\\% this is not a comment"
	assertTokenPositions(t, source, token.KindComment, span(0, 19))
}

func TestTokenize_MathDelimiters(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   token.Kind
		spans  []token.Span
	}{
		{"display math open", `Should match \[, but not [`, token.KindDisplayMathOpen, []token.Span{span(13, 15)}},
		{"display math close", `Should match \], but not ]`, token.KindDisplayMathClose, []token.Span{span(13, 15)}},
		{"inline math open", `Should match \(, but not (`, token.KindInlineMathOpen, []token.Span{span(13, 15)}},
		{"inline math close", `Should match \), but not )`, token.KindInlineMathClose, []token.Span{span(13, 15)}},
		{"dollar sign", `Should match $, but not $$`, token.KindDollarSign, []token.Span{span(13, 14)}},
		{"double dollar sign", `Should match $$, but not $`, token.KindDoubleDollarSign, []token.Span{span(13, 15)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokenPositions(t, tt.source, tt.kind, tt.spans...)
		})
	}
}

func TestTokenize_DocumentClass(t *testing.T) {
	assertTokenPositions(t, `\documentclass{article}`, token.KindDocumentClass, span(0, 14))
}

func TestTokenize_DocumentClassLongerCommandWins(t *testing.T) {
	// A longer letter run is a generic command, not \documentclass.
	assertTokenPositions(t, `\documentclassX`, token.KindCommandName, span(0, 15))
	assertTokenPositions(t, `\documentclassX`, token.KindDocumentClass)
}

func TestTokenize_DoubleBackslash(t *testing.T) {
	assertTokenPositions(t, `Should match \\, but not \`, token.KindDoubleBackslash, span(13, 15))
}

func TestTokenize_EnvironmentBegin(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantName string
		wantSpan token.Span
	}{
		{"plain", `\begin{equation}`, "equation", span(0, 16)},
		{"starred", `\begin{align*}`, "align*", span(0, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.source)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1", len(tokens))
			}
			st := tokens[0]
			if st.Token.Kind != token.KindEnvironmentBegin {
				t.Fatalf("kind = %v, want environment-begin", st.Token.Kind)
			}
			if st.Token.Name != tt.wantName {
				t.Errorf("name = %q, want %q", st.Token.Name, tt.wantName)
			}
			if st.Span != tt.wantSpan {
				t.Errorf("span = %v, want %v", st.Span, tt.wantSpan)
			}
		})
	}
}

func TestTokenize_EnvironmentEnd(t *testing.T) {
	tokens := Tokenize(`\end{equation}`)
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	st := tokens[0]
	if st.Token.Kind != token.KindEnvironmentEnd || st.Token.Name != "equation" {
		t.Errorf("got %v %q, want environment-end \"equation\"", st.Token.Kind, st.Token.Name)
	}
	if st.Span != span(0, 14) {
		t.Errorf("span = %v, want 0..14", st.Span)
	}
}

func TestTokenize_MalformedEnvironmentFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"no brace", `\begin equation`},
		{"empty name", `\begin{}`},
		{"digit in name", `\begin{x2}`},
		{"unterminated", `\begin{equation`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.source)
			if len(tokens) == 0 {
				t.Fatal("expected tokens")
			}
			if tokens[0].Token.Kind != token.KindCommandName {
				t.Errorf("first token = %v, want command-name", tokens[0].Token.Kind)
			}
			if got := tokens[0].Resolve(tt.source); got != `\begin` {
				t.Errorf("first token text = %q, want begin command", got)
			}
		})
	}
}

func TestTokenize_EscapedChar(t *testing.T) {
	for _, s := range []string{"{", "}", "_", "$", "&", "%", "#"} {
		source := "Should match \\" + s + ", but not " + s
		assertTokenPositions(t, source, token.KindEscapedChar, span(13, 15))
	}
}

func TestTokenize_InsertSpace(t *testing.T) {
	for _, s := range []string{",", ":", ";", "!", " "} {
		source := "Should match \\" + s + ", but not " + s
		assertTokenPositions(t, source, token.KindInsertSpace, span(13, 15))
	}
}

func TestTokenize_InvalidCommand(t *testing.T) {
	assertTokenPositions(t, `Should match \+, but not \;`, token.KindInvalidCommand, span(13, 15))
}

func TestTokenize_Newline(t *testing.T) {
	assertTokenPositions(t, "Hello\nMy name is\r\nJérome", token.KindNewline,
		span(5, 6), span(16, 18))
}

func TestTokenize_Number(t *testing.T) {
	assertTokenPositions(t, "0123.456 789", token.KindNumber,
		span(0, 4), span(5, 8), span(9, 12))
}

func TestTokenize_Other(t *testing.T) {
	assertTokenPositions(t, "' ` < >", token.KindOther,
		span(0, 1), span(2, 3), span(4, 5), span(6, 7))
}

func TestTokenize_OtherMultibyteRune(t *testing.T) {
	// One fallback token per rune, never splitting UTF-8 sequences.
	assertTokenPositions(t, "é", token.KindOther, span(0, 2))
}

func TestTokenize_TrailingBackslash(t *testing.T) {
	assertTokenPositions(t, `word\`, token.KindOther, span(4, 5))
}

func TestTokenize_TabsOrSpaces(t *testing.T) {
	assertTokenPositions(t, "Should match \t, but not \\ ", token.KindTabsOrSpaces,
		span(6, 7), span(12, 14), span(15, 16), span(19, 20), span(23, 24))
}

func TestTokenize_Word(t *testing.T) {
	assertTokenPositions(t, `Should match words`, token.KindWord,
		span(0, 6), span(7, 12), span(13, 18))
}

// TestTokenize_Document walks a small document token by token.
func TestTokenize_Document(t *testing.T) {
	source := "\\documentclass{article}\n" +
		"\\usepackage{tikz}\n" +
		"\n" +
		"\\begin{document}\n" +
		"    \\begin{tikzpicture}[scale=1.5]\n" +
		"    \\end{tikzpicture}\n" +
		"\\end{document}\n"

	want := []struct {
		kind token.Kind
		text string
	}{
		{token.KindDocumentClass, `\documentclass`},
		{token.KindBraceOpen, "{"},
		{token.KindWord, "article"},
		{token.KindBraceClose, "}"},
		{token.KindNewline, "\n"},
		{token.KindCommandName, `\usepackage`},
		{token.KindBraceOpen, "{"},
		{token.KindWord, "tikz"},
		{token.KindBraceClose, "}"},
		{token.KindNewline, "\n"},
		{token.KindNewline, "\n"},
		{token.KindEnvironmentBegin, `\begin{document}`},
		{token.KindNewline, "\n"},
		{token.KindTabsOrSpaces, "    "},
		{token.KindEnvironmentBegin, `\begin{tikzpicture}`},
		{token.KindBracketOpen, "["},
		{token.KindWord, "scale"},
		{token.KindEqualSign, "="},
		{token.KindNumber, "1"},
		{token.KindDot, "."},
		{token.KindNumber, "5"},
		{token.KindBracketClose, "]"},
		{token.KindNewline, "\n"},
		{token.KindTabsOrSpaces, "    "},
		{token.KindEnvironmentEnd, `\end{tikzpicture}`},
		{token.KindNewline, "\n"},
		{token.KindEnvironmentEnd, `\end{document}`},
		{token.KindNewline, "\n"},
	}

	tokens := Tokenize(source)
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Token.Kind != w.kind {
			t.Errorf("token[%d] kind = %v, want %v", i, tokens[i].Token.Kind, w.kind)
		}
		if got := tokens[i].Resolve(source); got != w.text {
			t.Errorf("token[%d] text = %q, want %q", i, got, w.text)
		}
	}
}

// TestTokenize_Coverage checks the partition invariant: concatenating the
// source slices of the output spans reproduces the input exactly.
func TestTokenize_Coverage(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"plain text", "Hello, world!"},
		{"command", `\section{Introduction}`},
		{"environments", "\\begin{align*}\nx &= 1 \\\\\ny &= 2\n\\end{align*}"},
		{"math", `inline $a+b$ and display $$c$$ and \(d\) and \[e\]`},
		{"comment", "text % comment\nmore"},
		{"escapes", `\% \$ \& \{ \} \_ \#`},
		{"crlf", "line1\r\nline2\r\n"},
		{"lone cr", "odd\rline"},
		{"unicode", "héllo wörld ¶ß"},
		{"trailing backslash", `oops\`},
		{"mixed", "\\documentclass{article}\n% preamble\n\\begin{document}\n$x^2$\n\\end{document}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.source)

			if !token.Validate(tokens, len(tt.source)) {
				t.Errorf("tokens do not partition the source")
				for i, st := range tokens {
					t.Logf("  token[%d]: kind=%v span=%v text=%q",
						i, st.Token.Kind, st.Span, st.Resolve(tt.source))
				}
			}

			var sb strings.Builder
			for _, st := range tokens {
				sb.WriteString(st.Resolve(tt.source))
			}
			if sb.String() != tt.source {
				t.Errorf("concatenated slices = %q, want %q", sb.String(), tt.source)
			}
		})
	}
}

// TestLexer_Lazy checks that Next yields the same sequence as Tokenize, one
// token per pull.
func TestLexer_Lazy(t *testing.T) {
	source := `\begin{equation} e = mc^2 \end{equation}`

	lex := New(source)
	var pulled []token.SpannedToken
	for {
		st, ok := lex.Next()
		if !ok {
			break
		}
		pulled = append(pulled, st)
	}

	eager := Tokenize(source)
	if len(pulled) != len(eager) {
		t.Fatalf("pulled %d tokens, eager %d", len(pulled), len(eager))
	}
	for i := range eager {
		if pulled[i] != eager[i] {
			t.Errorf("token[%d]: pulled %+v, eager %+v", i, pulled[i], eager[i])
		}
	}
}
