package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(s *Stream) []Type {
	types := make([]Type, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		types = append(types, s.At(i).Type)
	}
	return types
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []Type
		texts []string
	}{
		{
			name:  "if statement header",
			input: "if (x) {",
			types: []Type{KwIf, Whitespace, LParen, Ident, RParen, Whitespace, LBrace},
			texts: []string{"if", " ", "(", "x", ")", " ", "{"},
		},
		{
			name:  "whitespace runs are maximal",
			input: "a  \t\nb",
			types: []Type{Ident, Whitespace, Ident},
			texts: []string{"a", "  \t\n", "b"},
		},
		{
			name:  "line comment stops before newline",
			input: "x // note\ny",
			types: []Type{Ident, Whitespace, Comment, Whitespace, Ident},
			texts: []string{"x", " ", "// note", "\n", "y"},
		},
		{
			name:  "block comment",
			input: "if(/* x */true)",
			types: []Type{KwIf, LParen, Comment, Ident, RParen},
			texts: []string{"if", "(", "/* x */", "true", ")"},
		},
		{
			name:  "preprocessor directive",
			input: "#include <stdio.h>\nint x;",
			types: []Type{Preprocessor, Whitespace, Ident, Whitespace, Ident, Semicolon},
			texts: []string{"#include <stdio.h>", "\n", "int", " ", "x", ";"},
		},
		{
			name:  "string and char literals",
			input: `f("a\"b", 'c')`,
			types: []Type{Ident, LParen, String, Comma, Whitespace, Char, RParen},
			texts: []string{"f", "(", `"a\"b"`, ",", " ", "'c'", ")"},
		},
		{
			name:  "numbers",
			input: "0xFF + 1.5e3",
			types: []Type{Number, Whitespace, Operator, Whitespace, Number},
			texts: []string{"0xFF", " ", "+", " ", "1.5e3"},
		},
		{
			name:  "operators use maximal munch",
			input: "a<=b",
			types: []Type{Ident, Operator, Ident},
			texts: []string{"a", "<=", "b"},
		},
		{
			name:  "operator run does not swallow comment start",
			input: "a=// c",
			types: []Type{Ident, Operator, Comment},
			texts: []string{"a", "=", "// c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := NewLexer([]byte(tt.input)).Tokenize()
			require.Equal(t, tt.types, tokenTypes(stream))
			for i, text := range tt.texts {
				assert.Equal(t, text, stream.At(i).Text)
			}
			assert.Equal(t, tt.input, stream.Text(0, stream.Len()-1),
				"token texts must reproduce the source")
		})
	}
}

func TestLexer_BracketLinks(t *testing.T) {
	stream := NewLexer([]byte("if (f(x)) { g[1]; }")).Tokenize()

	// collect indexes by text for readability
	idx := map[string][]int{}
	for i := 0; i < stream.Len(); i++ {
		tok := stream.At(i)
		idx[tok.Text] = append(idx[tok.Text], i)
	}

	outerOpen, innerOpen := idx["("][0], idx["("][1]
	innerClose, outerClose := idx[")"][0], idx[")"][1]
	assert.Equal(t, outerClose, stream.At(outerOpen).Pair)
	assert.Equal(t, outerOpen, stream.At(outerClose).Pair)
	assert.Equal(t, innerClose, stream.At(innerOpen).Pair)

	lbrace, rbrace := idx["{"][0], idx["}"][0]
	assert.Equal(t, rbrace, stream.At(lbrace).Pair)
	assert.Equal(t, lbrace, stream.At(rbrace).Pair)

	lbracket, rbracket := idx["["][0], idx["]"][0]
	assert.Equal(t, rbracket, stream.At(lbracket).Pair)
}

func TestLexer_UnbalancedBrackets(t *testing.T) {
	stream := NewLexer([]byte("if (x {")).Tokenize()
	for i := 0; i < stream.Len(); i++ {
		assert.Equal(t, NoPair, stream.At(i).Pair, "token %d", i)
	}
}

func TestLexer_LineAndColumn(t *testing.T) {
	stream := NewLexer([]byte("int x;\n  if (y) {\n}")).Tokenize()

	var ifTok, rbraceTok Token
	for i := 0; i < stream.Len(); i++ {
		switch stream.At(i).Type {
		case KwIf:
			ifTok = stream.At(i)
		case RBrace:
			rbraceTok = stream.At(i)
		}
	}
	assert.Equal(t, 2, ifTok.Line)
	assert.Equal(t, 3, ifTok.Column)
	assert.Equal(t, 3, rbraceTok.Line)
	assert.Equal(t, 1, rbraceTok.Column)
}

func TestLookup(t *testing.T) {
	assert.Equal(t, KwWhile, Lookup("while"))
	assert.Equal(t, Ident, Lookup("whileLoop"))
}
