package internal

import (
	"github.com/plint-dev/plint/pattern"
)

// checkConstructor builds a fresh check instance bound to a reporter.
// A new instance is constructed per (check, file) pairing so that the
// per-position deduplication set starts empty for every file.
type checkConstructor func(r pattern.Reporter, ignoreComments bool) (pattern.Check, error)

// checkOrder fixes the evaluation order of the built-in checks.
var checkOrder = []string{
	"control-flow-spacing",
	"while-after-do",
	"comma-spacing",
}

var allCheckConstructors = map[string]checkConstructor{
	"control-flow-spacing": NewControlFlowSpacingCheck,
	"while-after-do":       NewWhileAfterDoCheck,
	"comma-spacing":        NewCommaSpacingCheck,
}

// CheckNames returns the built-in check names in evaluation order.
func CheckNames() []string {
	names := make([]string, len(checkOrder))
	copy(names, checkOrder)
	return names
}

func newTemplateCheck(r pattern.Reporter, ignoreComments bool, templates ...string) (pattern.Check, error) {
	c := pattern.NewPatternCheck(r)
	c.SetIgnoreComments(ignoreComments)
	if err := c.AddPatterns(templates...); err != nil {
		return nil, err
	}
	return c, nil
}

// NewControlFlowSpacingCheck enforces one space between a control-flow
// keyword and its condition and before the opening brace, and cuddled
// else blocks.
func NewControlFlowSpacingCheck(r pattern.Reporter, ignoreComments bool) (pattern.Check, error) {
	return newTemplateCheck(r, ignoreComments,
		"if (...) {",
		"for (...) {",
		"while (...) {",
		"switch (...) {",
		"} else if (...) {",
		"} else {",
		"do {",
	)
}

// NewWhileAfterDoCheck enforces the tail of a do-while loop to sit on
// the closing brace line.
func NewWhileAfterDoCheck(r pattern.Reporter, ignoreComments bool) (pattern.Check, error) {
	return newTemplateCheck(r, ignoreComments, "} while (...);")
}

// NewCommaSpacingCheck enforces a single space after every comma.
// Strict: a comma at the end of a line is flagged as well.
func NewCommaSpacingCheck(r pattern.Reporter, ignoreComments bool) (pattern.Check, error) {
	return newTemplateCheck(r, ignoreComments, ", ")
}

// customCheckConstructor adapts a user-declared template list from the
// configuration file into a check constructor.
func customCheckConstructor(templates []string) checkConstructor {
	return func(r pattern.Reporter, ignoreComments bool) (pattern.Check, error) {
		return newTemplateCheck(r, ignoreComments, templates...)
	}
}
