package pattern

import (
	"errors"
	"fmt"

	"github.com/plint-dev/plint/token"
)

// Weights ranks token types by rarity. A higher weight means the type
// occurs less often in typical source, which makes it a cheaper trigger:
// the dispatcher calls back once per occurrence of the anchor type.
type Weights map[token.Type]int

// ErrNoListenableToken reports a pattern without a single significant
// token step. There is nothing to anchor on, so registration of the
// owning check must abort.
var ErrNoListenableToken = errors.New("pattern has no significant token to anchor on")

// DefaultWeights is a rarity table for C-family source. Keywords beat
// identifiers and literals, which beat punctuation.
var DefaultWeights = Weights{
	token.KwIf:       100,
	token.KwElse:     100,
	token.KwFor:      100,
	token.KwWhile:    100,
	token.KwDo:       100,
	token.KwSwitch:   100,
	token.KwCase:     95,
	token.KwDefault:  95,
	token.KwBreak:    95,
	token.KwContinue: 95,
	token.KwReturn:   90,
	token.KwGoto:     100,
	token.KwStruct:   90,
	token.KwEnum:     90,
	token.KwUnion:    90,
	token.KwTypedef:  90,
	token.KwSizeof:   90,

	token.String:       40,
	token.Char:         40,
	token.Number:       25,
	token.Ident:        10,
	token.Operator:     15,
	token.LBracket:     20,
	token.RBracket:     20,
	token.LBrace:       8,
	token.RBrace:       8,
	token.LParen:       5,
	token.RParen:       5,
	token.Semicolon:    5,
	token.Comma:        5,
	token.Preprocessor: 50,
	token.Comment:      30,
}

// SelectAnchor picks the pattern's trigger token: among the first
// occurrences of each distinct significant token type, the type with the
// highest weight wins and its first-occurrence index becomes the anchor.
func SelectAnchor(p *Pattern, weights Weights) error {
	first := make(map[token.Type]int)
	var order []token.Type
	for i, step := range p.Steps {
		if !step.significant() {
			continue
		}
		if _, seen := first[step.Type]; !seen {
			first[step.Type] = i
			order = append(order, step.Type)
		}
	}
	if len(order) == 0 {
		return fmt.Errorf("pattern %q: %w", p.Template, ErrNoListenableToken)
	}

	best := order[0]
	for _, t := range order[1:] {
		if weights[t] > weights[best] {
			best = t
		}
	}
	p.Anchor = first[best]
	return nil
}
