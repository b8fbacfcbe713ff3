package pattern

import (
	"fmt"
	"strings"

	"github.com/plint-dev/plint/token"
)

// Verdict classifies the result of matching one pattern at one
// anchor occurrence.
type Verdict int

const (
	// NotApplicable means a structural prerequisite of the pattern is
	// absent at this occurrence. The pattern simply does not apply;
	// another pattern may still match the same occurrence.
	NotApplicable Verdict = iota
	// Conforms means every step matched, whitespace included.
	Conforms
	// Violated means the significant tokens lined up but at least one
	// whitespace run differs from the template.
	Violated
)

// Outcome is the transient result of one (pattern, occurrence) match.
type Outcome struct {
	Verdict Verdict
	Found   string // reconstructed source text, set when Violated
}

// placeholder stands in for a skipped region in reconstructed text.
const placeholder = "..."

// Matcher runs compiled patterns against live token streams. When
// ignoreComments is set, comment tokens are transparent: directional
// searches step over them and whitespace around them is never compared.
type Matcher struct {
	ignoreComments bool
	search         token.TypeSet // exclusion set for significant-token searches
}

func NewMatcher(ignoreComments bool) *Matcher {
	search := token.NewTypeSet(token.Whitespace)
	if ignoreComments {
		search.Add(token.Comment)
	}
	return &Matcher{ignoreComments: ignoreComments, search: search}
}

// Match evaluates one pattern against the stream at position pos, which
// must hold a token of the pattern's anchor type. The backward scan
// covers the steps before the anchor, the forward scan the anchor step
// and everything after it; any failed lookup in either direction
// collapses the whole outcome to NotApplicable.
func (m *Matcher) Match(stream *token.Stream, pos int, p *Pattern) Outcome {
	r := &matchRun{m: m, stream: stream, p: p}
	if !r.backward(pos) || !r.forward(pos) {
		return Outcome{Verdict: NotApplicable}
	}
	if r.violated {
		return Outcome{Verdict: Violated, Found: r.foundText()}
	}
	return Outcome{Verdict: Conforms}
}

// matchRun holds the state of a single match attempt. Text reconstructed
// by the backward scan is collected in reverse and stitched back together
// in foundText.
type matchRun struct {
	m      *Matcher
	stream *token.Stream
	p      *Pattern

	before   []string // backward pieces, nearest-to-anchor first
	after    []string // forward pieces, in stream order
	violated bool
}

func (r *matchRun) foundText() string {
	var b strings.Builder
	for i := len(r.before) - 1; i >= 0; i-- {
		b.WriteString(r.before[i])
	}
	for _, s := range r.after {
		b.WriteString(s)
	}
	return b.String()
}

func (r *matchRun) prepend(s string) { r.before = append(r.before, s) }
func (r *matchRun) append(s string)  { r.after = append(r.after, s) }

func (r *matchRun) isComment(i int) bool {
	return i >= 0 && i < r.stream.Len() && r.stream.At(i).IsComment()
}

// backward walks the steps before the anchor, moving a real cursor from
// just before pos toward the stream start. cur is the next index to
// examine, inclusive.
func (r *matchRun) backward(pos int) bool {
	cur := pos - 1
	for i := r.p.Anchor - 1; i >= 0; i-- {
		step := r.p.Steps[i]
		switch {
		case step.Kind == StepSkip:
			idx := r.stream.FindPrev(r.m.search, cur, -1)
			if idx == token.NotFound {
				return false
			}
			tok := r.stream.At(idx)
			if tok.Type != backwardCloser(step.Closer) || tok.Pair == token.NoPair {
				return false
			}
			r.prepend(placeholder)
			// resume at the balanced opener so the preceding token step
			// finds the delimiter in place
			cur = tok.Pair

		case step.isWhitespace():
			// spacing around comments is freeform when comments are ignored
			if r.m.ignoreComments && (r.isComment(cur) || r.isComment(cur-1)) {
				continue
			}
			actual := ""
			if cur >= 0 && r.stream.At(cur).IsWhitespace() {
				actual = r.stream.At(cur).Text
				r.prepend(actual)
				cur--
			}
			if actual != step.Text {
				r.violated = true
			}

		default:
			idx := r.stream.FindPrev(r.m.search, cur, -1)
			if idx == token.NotFound || r.stream.At(idx).Type != step.Type {
				return false
			}
			// the matched token plus anything stepped over on the way
			r.prepend(r.stream.Text(idx, cur))
			if i > 0 && r.p.Steps[i-1].Kind == StepSkip {
				cur = idx
			} else {
				cur = idx - 1
			}
		}
	}
	return true
}

// forward mirrors backward in the opposite direction, starting with the
// anchor step itself at pos.
func (r *matchRun) forward(pos int) bool {
	n := r.stream.Len()
	cur := pos
	for i := r.p.Anchor; i < len(r.p.Steps); i++ {
		step := r.p.Steps[i]
		switch {
		case step.Kind == StepSkip:
			idx := r.stream.FindNext(r.m.search, cur, n)
			if idx == token.NotFound {
				return false
			}
			tok := r.stream.At(idx)
			if tok.Type != forwardOpener(step.Closer) || tok.Pair == token.NoPair {
				return false
			}
			r.append(placeholder)
			cur = tok.Pair

		case step.isWhitespace():
			if r.m.ignoreComments && (r.isComment(cur) || r.isComment(cur+1)) {
				continue
			}
			if i == len(r.p.Steps)-1 {
				// trailing whitespace step: compare only the single
				// immediately-following token
				actual := ""
				if cur < n && r.stream.At(cur).IsWhitespace() {
					actual = r.stream.At(cur).Text
					r.append(actual)
					cur++
				}
				if actual != step.Text {
					r.violated = true
				}
				continue
			}
			start := cur
			for cur < n && r.stream.At(cur).IsWhitespace() {
				cur++
			}
			actual := r.stream.Text(start, cur-1)
			r.append(actual)
			if actual != step.Text {
				r.violated = true
			}

		default:
			idx := r.stream.FindNext(r.m.search, cur, n)
			if idx == token.NotFound || r.stream.At(idx).Type != step.Type {
				return false
			}
			r.append(r.stream.Text(cur, idx))
			if i+1 < len(r.p.Steps) && r.p.Steps[i+1].Kind == StepSkip {
				cur = idx
			} else {
				cur = idx + 1
			}
		}
	}
	return true
}

// backwardCloser is the token type a backward skip expects to find: the
// closer whose cross-link leads back to the opener.
func backwardCloser(k CloserKind) token.Type {
	if k == ScopeCloser {
		return token.RBrace
	}
	return token.RParen
}

// forwardOpener is the token type a forward skip expects to find: the
// opener whose cross-link leads ahead to the closer.
func forwardOpener(k CloserKind) token.Type {
	if k == ScopeCloser {
		return token.LBrace
	}
	return token.LParen
}

var crlfEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// violationMessage quotes the template and the reconstructed found text,
// with carriage returns and line feeds rendered as visible escapes.
func violationMessage(template, found string) string {
	return fmt.Sprintf("expected \"%s\", found \"%s\"",
		crlfEscaper.Replace(template), crlfEscaper.Replace(found))
}
