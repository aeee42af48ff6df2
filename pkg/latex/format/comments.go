package format

import (
	"github.com/jeertmans/untex/pkg/latex/token"
)

// CommentStripper passes tokens through unchanged, dropping comments.
type CommentStripper struct {
	stream token.Stream
}

// StripComments returns a stateless formatter that removes comment tokens.
func StripComments(s token.Stream) *CommentStripper {
	return &CommentStripper{stream: s}
}

// Next implements token.Stream.
func (f *CommentStripper) Next() (token.SpannedToken, bool) {
	for {
		st, ok := f.stream.Next()
		if !ok {
			return token.SpannedToken{}, false
		}
		if st.Token.Kind != token.KindComment {
			return st, true
		}
	}
}
