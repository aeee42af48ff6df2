package cli

import (
	"strconv"
	"testing"
	"unicode/utf8"
)

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{
			name: "short text untouched",
			text: "abc",
			max:  10,
			want: "abc",
		},
		{
			name: "exact length untouched",
			text: "abc",
			max:  3,
			want: "abc",
		},
		{
			name: "zero max untouched",
			text: "abc",
			max:  0,
			want: "abc",
		},
		{
			name: "negative max untouched",
			text: "abc",
			max:  -1,
			want: "abc",
		},
		{
			name: "ascii cut",
			text: "abcdef",
			max:  3,
			want: "abc…",
		},
		{
			name: "cut lands mid rune",
			text: "héllo",
			max:  2,
			want: "h…",
		},
		{
			name: "cut lands on rune boundary",
			text: "héllo",
			max:  3,
			want: "hé…",
		},
		{
			name: "leading multibyte rune",
			text: "éllo",
			max:  1,
			want: "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := truncateToWidth(tt.text, tt.max)
			if got != tt.want {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateToWidth(%q, %d) produced invalid UTF-8: %q", tt.text, tt.max, got)
			}
		})
	}
}

func TestTruncateToWidthQuotedText(t *testing.T) {
	t.Parallel()

	// strconv.Quote keeps printable non-ASCII unescaped, so quoted token
	// text can carry multi-byte runes at any position.
	quoted := strconv.Quote("Jérome était là")

	for max := 1; max <= len(quoted); max++ {
		got := truncateToWidth(quoted, max)
		if !utf8.ValidString(got) {
			t.Errorf("truncateToWidth(%q, %d) produced invalid UTF-8: %q", quoted, max, got)
		}
	}
}
