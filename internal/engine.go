package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/plint-dev/plint/internal/types"
	"github.com/plint-dev/plint/token"
)

// Engine manages the linting process: it owns the resolved set of check
// specs and drives one linear dispatch pass per file.
type Engine struct {
	specs          []checkSpec
	ignoredChecks  map[string]bool
	ignoredPaths   []string
	ignoreComments bool

	// watch mode
	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching atomic.Bool
}

// checkSpec is one named check with its resolved severity.
type checkSpec struct {
	name      string
	severity  types.Severity
	construct checkConstructor
}

// NewEngine resolves the configured checks and validates every template
// once. A template that cannot be compiled or anchored aborts engine
// construction; such errors are registration-time fatal and are never
// surfaced per file.
func NewEngine(checks map[string]types.ConfigCheck, custom []types.CustomPattern, ignoreComments bool) (*Engine, error) {
	e := &Engine{
		ignoredChecks:  make(map[string]bool),
		ignoreComments: ignoreComments,
	}

	for _, name := range checkOrder {
		severity := types.SeverityWarning
		if cfg, ok := checks[name]; ok {
			severity = cfg.Severity
		}
		e.specs = append(e.specs, checkSpec{
			name:      name,
			severity:  severity,
			construct: allCheckConstructors[name],
		})
	}
	for _, cp := range custom {
		e.specs = append(e.specs, checkSpec{
			name:      cp.Name,
			severity:  cp.Severity,
			construct: customCheckConstructor(cp.Templates),
		})
	}

	for _, spec := range e.specs {
		if _, err := spec.construct(discardReporter{}, ignoreComments); err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.name, err)
		}
	}
	return e, nil
}

// IgnoreCheck disables a check by name for this engine.
func (e *Engine) IgnoreCheck(name string) {
	e.ignoredChecks[name] = true
}

// IgnorePath excludes a path prefix from linting.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isPathIgnored(path string) bool {
	clean := filepath.Clean(path)
	for _, p := range e.ignoredPaths {
		if clean == p || strings.HasPrefix(clean, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run lints one file and returns its issues.
func (e *Engine) Run(filename string) ([]types.Issue, error) {
	if e.isPathIgnored(filename) {
		return nil, nil
	}
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	issues, err := e.RunSource(source)
	if err != nil {
		return nil, err
	}
	for i := range issues {
		issues[i].Filename = filename
	}
	return issues, nil
}

// RunSource lints raw source bytes. Each enabled check gets a fresh
// instance, is asked once for its interest set, and is then called back
// per occurrence of an interest token, in stream order.
func (e *Engine) RunSource(source []byte) ([]types.Issue, error) {
	stream := token.NewLexer(source).Tokenize()

	var all []types.Issue
	for _, spec := range e.specs {
		if e.ignoredChecks[spec.name] || spec.severity == types.SeverityOff {
			continue
		}
		collector := &issueCollector{stream: stream, check: spec.name, severity: spec.severity}
		chk, err := spec.construct(collector, e.ignoreComments)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.name, err)
		}
		interest := token.NewTypeSet(chk.InterestTypes()...)
		for i := 0; i < stream.Len(); i++ {
			if interest.Has(stream.At(i).Type) {
				chk.OnToken(stream, i)
			}
		}
		all = append(all, collector.issues...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}
		return all[i].Column < all[j].Column
	})
	return all, nil
}

// issueCollector adapts the reporter sink of the pattern engine to
// positioned Issue values.
type issueCollector struct {
	stream   *token.Stream
	check    string
	severity types.Severity
	issues   []types.Issue
}

func (c *issueCollector) Report(message string, pos int) {
	tok := c.stream.At(pos)
	c.issues = append(c.issues, types.Issue{
		Check:    c.check,
		Severity: c.severity,
		Line:     tok.Line,
		Column:   tok.Column,
		Message:  message,
	})
}

// discardReporter is used for registration-time template validation.
type discardReporter struct{}

func (discardReporter) Report(string, int) {}

var targetExtensions = map[string]bool{
	".c":   true,
	".h":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".hpp": true,
}

// TargetExtensions lists the lintable file extensions in sorted order.
func TargetExtensions() []string {
	exts := make([]string, 0, len(targetExtensions))
	for ext := range targetExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// HasTargetExtension reports whether path names a lintable source file.
func HasTargetExtension(path string) bool {
	return targetExtensions[filepath.Ext(path)]
}
