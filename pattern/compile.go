package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plint-dev/plint/token"
)

// skipMarker is the template spelling of a skip step. It is only valid
// directly after the bracket that opens the region to skip.
const skipMarker = "..."

// ErrBadSkipMarker reports a "..." marker that does not directly follow
// '(' or '{'. Such templates have no defined closer kind and are
// rejected at compile time.
var ErrBadSkipMarker = errors.New("skip marker must directly follow '(' or '{'")

// Compile translates one template string into an ordered step sequence.
// Literal fragments between markers are tokenized with the target
// language's lexer, one step per token, keeping each token's exact text
// as the expected value. The anchor is left unset; see SelectAnchor.
func Compile(template string) (*Pattern, error) {
	var steps []Step
	rest := template
	for {
		i := strings.Index(rest, skipMarker)
		if i < 0 {
			break
		}
		if i == 0 || (rest[i-1] != '(' && rest[i-1] != '{') {
			return nil, fmt.Errorf("compiling %q: %w", template, ErrBadSkipMarker)
		}
		closer := ParenCloser
		if rest[i-1] == '{' {
			closer = ScopeCloser
		}
		steps = append(steps, lexFragment(rest[:i])...)
		steps = append(steps, Step{Kind: StepSkip, Closer: closer})
		rest = rest[i+len(skipMarker):]
	}
	steps = append(steps, lexFragment(rest)...)

	return &Pattern{Steps: steps, Anchor: -1, Template: template}, nil
}

// lexFragment tokenizes a literal template fragment. The lexer handles
// free-standing fragments directly, so no synthetic wrapping is needed.
func lexFragment(fragment string) []Step {
	if fragment == "" {
		return nil
	}
	stream := token.NewLexer([]byte(fragment)).Tokenize()
	steps := make([]Step, 0, stream.Len())
	for i := 0; i < stream.Len(); i++ {
		tok := stream.At(i)
		steps = append(steps, Step{Kind: StepToken, Type: tok.Type, Text: tok.Text})
	}
	return steps
}
