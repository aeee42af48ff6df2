package token

// Stream is a lazy, pull-based sequence of spanned tokens. Next returns the
// next token and true, or a zero token and false once the stream is
// exhausted. Streams are single-pass and not restartable.
type Stream interface {
	Next() (SpannedToken, bool)
}

// SliceStream adapts a token slice into a Stream.
type SliceStream struct {
	tokens []SpannedToken
	pos    int
}

// NewSliceStream returns a stream over the given tokens.
func NewSliceStream(tokens []SpannedToken) *SliceStream {
	return &SliceStream{tokens: tokens}
}

// Next implements Stream.
func (s *SliceStream) Next() (SpannedToken, bool) {
	if s.pos >= len(s.tokens) {
		return SpannedToken{}, false
	}
	st := s.tokens[s.pos]
	s.pos++
	return st, true
}

// Collect drains a stream into a slice.
func Collect(s Stream) []SpannedToken {
	var tokens []SpannedToken
	for {
		st, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, st)
	}
}
