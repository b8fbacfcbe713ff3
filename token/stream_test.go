package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_FindNext(t *testing.T) {
	stream := NewLexer([]byte("if (x) // c\n{")).Tokenize()
	skip := NewTypeSet(Whitespace, Comment)

	tests := []struct {
		name     string
		from     int
		boundary int
		want     Type
	}{
		{"finds self when significant", 0, stream.Len(), KwIf},
		{"skips whitespace", 1, stream.Len(), LParen},
		{"skips whitespace and comment", 6, stream.Len(), LBrace},
		{"boundary cuts the search short", 1, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := stream.FindNext(skip, tt.from, tt.boundary)
			if tt.want == -1 {
				assert.Equal(t, NotFound, idx)
				return
			}
			assert.Equal(t, tt.want, stream.At(idx).Type)
		})
	}
}

func TestStream_FindPrev(t *testing.T) {
	stream := NewLexer([]byte("if (x) {")).Tokenize()
	skip := NewTypeSet(Whitespace)

	idx := stream.FindPrev(skip, stream.Len()-2, -1)
	assert.Equal(t, RParen, stream.At(idx).Type)

	// nothing significant before the start
	assert.Equal(t, NotFound, stream.FindPrev(skip, -1, -1))

	// boundary excludes the only candidate
	assert.Equal(t, NotFound, stream.FindPrev(skip, 1, 0))
}

func TestStream_Text(t *testing.T) {
	stream := NewLexer([]byte("if (x) {")).Tokenize()

	assert.Equal(t, "if (x) {", stream.Text(0, stream.Len()-1))
	assert.Equal(t, "(x)", stream.Text(2, 4))
	assert.Equal(t, "", stream.Text(3, 2), "inverted range renders empty")
}

func TestTypeSet(t *testing.T) {
	s := NewTypeSet(Whitespace, Comment, Whitespace)
	assert.True(t, s.Has(Whitespace))
	assert.False(t, s.Has(Ident))
	assert.Equal(t, []Type{Whitespace, Comment}, s.Types())
}
