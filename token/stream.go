package token

import "strings"

// NotFound is the sentinel index returned by directional searches when
// no token qualifies before the boundary.
const NotFound = -1

// Stream is a finite ordered token sequence produced by the lexer.
// It is read-only once built; the match engine never mutates it.
type Stream struct {
	tokens []Token
}

// NewStream wraps an already-linked token slice.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

func (s *Stream) Len() int { return len(s.tokens) }

func (s *Stream) At(i int) Token { return s.tokens[i] }

// FindNext returns the index of the nearest token at or after from whose
// type is not in excluded, scanning up to but not including boundary.
// Pass Len() as the boundary to search to the end of the stream.
func (s *Stream) FindNext(excluded TypeSet, from, boundary int) int {
	if from < 0 {
		from = 0
	}
	if boundary > len(s.tokens) {
		boundary = len(s.tokens)
	}
	for i := from; i < boundary; i++ {
		if !excluded.Has(s.tokens[i].Type) {
			return i
		}
	}
	return NotFound
}

// FindPrev returns the index of the nearest token at or before from whose
// type is not in excluded, scanning down to but not including boundary.
// Pass -1 as the boundary to search to the start of the stream.
func (s *Stream) FindPrev(excluded TypeSet, from, boundary int) int {
	if from >= len(s.tokens) {
		from = len(s.tokens) - 1
	}
	if boundary < -1 {
		boundary = -1
	}
	for i := from; i > boundary; i-- {
		if !excluded.Has(s.tokens[i].Type) {
			return i
		}
	}
	return NotFound
}

// Text renders the literal source text spanned by the inclusive token
// range [from, to]. An empty string is returned for an inverted range.
func (s *Stream) Text(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to >= len(s.tokens) {
		to = len(s.tokens) - 1
	}
	if from > to {
		return ""
	}
	var b strings.Builder
	for i := from; i <= to; i++ {
		b.WriteString(s.tokens[i].Text)
	}
	return b.String()
}
