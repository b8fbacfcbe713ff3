package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plint-dev/plint/token"
)

func compileFor(t *testing.T, template string) *Pattern {
	t.Helper()
	p, err := Compile(template)
	require.NoError(t, err)
	return p
}

func TestSelectAnchor(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		weights    Weights
		wantAnchor int
		wantType   token.Type
	}{
		{
			name:       "keyword beats punctuation",
			template:   "if (...) {",
			weights:    DefaultWeights,
			wantAnchor: 0,
			wantType:   token.KwIf,
		},
		{
			name:       "brace beats paren without keywords",
			template:   ") {",
			weights:    DefaultWeights,
			wantAnchor: 2,
			wantType:   token.LBrace,
		},
		{
			name:       "first occurrence wins for repeated types",
			template:   "{ {",
			weights:    DefaultWeights,
			wantAnchor: 0,
			wantType:   token.LBrace,
		},
		{
			name:       "injected weights override the default ranking",
			template:   "if (...) {",
			weights:    Weights{token.LBrace: 1000},
			wantAnchor: 6,
			wantType:   token.LBrace,
		},
		{
			name:       "tie keeps the earlier type",
			template:   "} else if (...) {",
			weights:    DefaultWeights,
			wantAnchor: 2,
			wantType:   token.KwElse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compileFor(t, tt.template)
			require.NoError(t, SelectAnchor(p, tt.weights))
			assert.Equal(t, tt.wantAnchor, p.Anchor)
			assert.Equal(t, tt.wantType, p.AnchorType())
		})
	}
}

func TestSelectAnchor_NoListenableToken(t *testing.T) {
	p := compileFor(t, "  ")
	err := SelectAnchor(p, DefaultWeights)
	assert.ErrorIs(t, err, ErrNoListenableToken)
}
