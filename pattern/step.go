// Package pattern compiles human-readable token templates such as
// "if (...) {" into executable matching programs and verifies them
// against live token streams.
//
// A template mixes literal source text, exact whitespace runs, and the
// marker "..." directly after '(' or '{', which stands for "arbitrary
// tokens up to the balanced closer". Matching pivots on a single anchor
// token occurrence and scans outward in both directions.
package pattern

import "github.com/plint-dev/plint/token"

// StepKind discriminates compiled pattern steps.
type StepKind int

const (
	// StepToken requires one concrete token: a significant token matched
	// by type, or a whitespace run compared by exact literal text.
	StepToken StepKind = iota
	// StepSkip stands for an arbitrary-length gap that ends at a
	// balanced structural closer.
	StepSkip
)

// CloserKind tells a skip step which structural closer terminates it.
type CloserKind int

const (
	ParenCloser CloserKind = iota // gap ends at a balanced ')'
	ScopeCloser                   // gap ends at a balanced '}'
)

// Step is one element of a compiled pattern.
type Step struct {
	Kind   StepKind
	Type   token.Type // StepToken only
	Text   string     // expected literal text, StepToken only
	Closer CloserKind // StepSkip only
}

// significant reports whether the step requires a non-whitespace token.
// Only significant steps are anchor candidates.
func (s Step) significant() bool {
	return s.Kind == StepToken && s.Type != token.Whitespace
}

func (s Step) isWhitespace() bool {
	return s.Kind == StepToken && s.Type == token.Whitespace
}

// Pattern is a compiled template. Steps preserve template order; Anchor
// indexes the significant step whose token type triggers evaluation.
type Pattern struct {
	Steps    []Step
	Anchor   int    // set by SelectAnchor, -1 until then
	Template string // original template, quoted in diagnostics
}

// AnchorType returns the token type of the anchor step.
func (p *Pattern) AnchorType() token.Type {
	return p.Steps[p.Anchor].Type
}
