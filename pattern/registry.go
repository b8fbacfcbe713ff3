package pattern

import "github.com/plint-dev/plint/token"

// Entry is one compiled pattern stored under its anchor token type.
type Entry struct {
	Anchor   int
	Pattern  *Pattern
	Template string
}

// Registry groups compiled patterns by anchor token type and tracks the
// supplementary token types the owning check observes outside pattern
// matching. It is populated at construction time and read-only afterwards.
type Registry struct {
	entries       map[token.Type][]Entry
	supplementary token.TypeSet
}

func NewRegistry() *Registry {
	return &Registry{
		entries:       make(map[token.Type][]Entry),
		supplementary: make(token.TypeSet),
	}
}

// Add stores a pattern under its anchor type. The pattern must already
// have its anchor selected. One type may hold many entries; their
// registration order decides which pattern wins a shared position.
func (r *Registry) Add(p *Pattern) {
	typ := p.AnchorType()
	r.entries[typ] = append(r.entries[typ], Entry{
		Anchor:   p.Anchor,
		Pattern:  p,
		Template: p.Template,
	})
}

// AddSupplementary registers token types to be observed verbatim by the
// check's hook; the match engine never sees them.
func (r *Registry) AddSupplementary(types ...token.Type) {
	for _, t := range types {
		r.supplementary.Add(t)
	}
}

// EntriesFor returns all patterns anchored at the given type, in
// registration order.
func (r *Registry) EntriesFor(t token.Type) []Entry {
	return r.entries[t]
}

func (r *Registry) HasSupplementary(t token.Type) bool {
	return r.supplementary.Has(t)
}

// InterestTypes is the single contract surfaced to the host dispatcher:
// the deduplicated union of anchor types and supplementary types, in
// ascending type order.
func (r *Registry) InterestTypes() []token.Type {
	set := make(token.TypeSet, len(r.entries)+len(r.supplementary))
	for t := range r.entries {
		set.Add(t)
	}
	for t := range r.supplementary {
		set.Add(t)
	}
	return set.Types()
}
