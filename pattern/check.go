package pattern

import "github.com/plint-dev/plint/token"

// Check is the two-method contract between the host dispatcher and one
// lint check. InterestTypes is queried once at registration; OnToken is
// invoked once per occurrence of an interest type, in stream order.
type Check interface {
	InterestTypes() []token.Type
	OnToken(stream *token.Stream, pos int)
}

// Reporter is the sink for finished diagnostics. pos is the stream index
// of the anchor occurrence the message refers to.
type Reporter interface {
	Report(message string, pos int)
}

// PatternCheck verifies declared templates around anchor occurrences.
// One instance serves one file scan: the dedup set lives as long as the
// instance, so a position is reported at most once per file.
type PatternCheck struct {
	registry *Registry
	matcher  *Matcher
	dedup    *Dedup
	reporter Reporter
	weights  Weights

	// SupplementaryHook, when set, observes occurrences of the types
	// registered via Observe. The match engine never processes them.
	SupplementaryHook func(stream *token.Stream, pos int)
}

// NewPatternCheck returns a check with comment skipping disabled and the
// default rarity weights.
func NewPatternCheck(reporter Reporter) *PatternCheck {
	return &PatternCheck{
		registry: NewRegistry(),
		matcher:  NewMatcher(false),
		dedup:    NewDedup(),
		reporter: reporter,
		weights:  DefaultWeights,
	}
}

// SetIgnoreComments toggles transparent comment handling for all
// subsequent matching.
func (c *PatternCheck) SetIgnoreComments(ignore bool) {
	c.matcher = NewMatcher(ignore)
}

// SetWeights replaces the rarity table used for anchor selection of
// patterns added afterwards.
func (c *PatternCheck) SetWeights(w Weights) { c.weights = w }

// AddPattern compiles and registers one template. Compilation errors and
// anchorless patterns abort registration of the owning check.
func (c *PatternCheck) AddPattern(template string) error {
	p, err := Compile(template)
	if err != nil {
		return err
	}
	if err := SelectAnchor(p, c.weights); err != nil {
		return err
	}
	c.registry.Add(p)
	return nil
}

// AddPatterns registers templates in order, stopping at the first error.
func (c *PatternCheck) AddPatterns(templates ...string) error {
	for _, t := range templates {
		if err := c.AddPattern(t); err != nil {
			return err
		}
	}
	return nil
}

// Observe adds supplementary token types to the interest set.
func (c *PatternCheck) Observe(types ...token.Type) {
	c.registry.AddSupplementary(types...)
}

// InterestTypes implements Check.
func (c *PatternCheck) InterestTypes() []token.Type {
	return c.registry.InterestTypes()
}

// OnToken implements Check. Every pattern registered for the token's
// type is evaluated independently; violations surviving deduplication
// are reported in one batch after the last pattern ran.
func (c *PatternCheck) OnToken(stream *token.Stream, pos int) {
	tok := stream.At(pos)

	var queued []string
	for _, entry := range c.registry.EntriesFor(tok.Type) {
		outcome := c.matcher.Match(stream, pos, entry.Pattern)
		if outcome.Verdict != Violated {
			continue
		}
		if !c.dedup.Mark(pos) {
			continue
		}
		queued = append(queued, violationMessage(entry.Template, outcome.Found))
	}
	for _, msg := range queued {
		c.reporter.Report(msg, pos)
	}

	if c.registry.HasSupplementary(tok.Type) && c.SupplementaryHook != nil {
		c.SupplementaryHook(stream, pos)
	}
}
