// # internal/engine/lint/linter.go
package lint

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"lazyimport/internal/core/errors"
	"lazyimport/internal/engine/parser"
	"lazyimport/internal/engine/rule"
	"lazyimport/internal/engine/walker"
	"lazyimport/internal/shared/observability"
)

// Linter orchestrates parse, walk, classify and emit for many files, and
// accumulates diagnostics across them. A parse or read failure on one file
// is logged and isolated; it never aborts the batch.
type Linter struct {
	parser   *parser.Parser
	heavy    rule.HeavySet
	severity Severity

	mu            sync.Mutex
	diagnostics   []Diagnostic
	parseFailures int
}

func New(p *parser.Parser, heavy rule.HeavySet, severity Severity) *Linter {
	if !severity.Valid() {
		severity = SeverityWarning
	}
	return &Linter{parser: p, heavy: heavy, severity: severity}
}

// LintSource analyzes one file's source text without touching the
// accumulator. The traversal owns its scope tracker and classification
// result; nothing is shared across calls.
func (l *Linter) LintSource(path string, content []byte) ([]Diagnostic, error) {
	tree, err := l.parser.ParseSource(path, content)
	if err != nil {
		return nil, err
	}

	classifier := NewClassifier(l.heavy)
	walker.Walk(tree, walker.NewScopeTracker(), classifier.OnEnter)

	diagnostics := Emit(classifier.Result(), path, l.severity)
	if len(diagnostics) > 0 {
		observability.DiagnosticsTotal.WithLabelValues(RuleID).Add(float64(len(diagnostics)))
	}
	return diagnostics, nil
}

// LintFile reads and analyzes one file, appending its diagnostics to the
// accumulator.
func (l *Linter) LintFile(path string) ([]Diagnostic, error) {
	diagnostics, err := l.lintOne(path)
	if err != nil {
		return nil, err
	}
	l.append(diagnostics)
	return diagnostics, nil
}

func (l *Linter) lintOne(path string) ([]Diagnostic, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		de := &errors.DomainError{Code: errors.CodeUnreadable, Message: "read source file", Err: err}
		return nil, de.WithContext(errors.CtxPath, path)
	}
	observability.FilesScannedTotal.Inc()
	return l.LintSource(path, content)
}

// LintPaths analyzes a batch of files, fanning out up to workers goroutines.
// Diagnostics are accumulated in deterministic path order, not completion
// order. The returned slice holds this batch's diagnostics only.
func (l *Linter) LintPaths(ctx context.Context, paths []string, workers int) []Diagnostic {
	if len(paths) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	defer func() {
		observability.AnalysisDuration.WithLabelValues("batch").Observe(time.Since(start).Seconds())
	}()

	ordered := make([]string, len(paths))
	copy(ordered, paths)
	sort.Strings(ordered)

	results := make([][]Diagnostic, len(ordered))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range ordered {
		group.Go(func() error {
			diagnostics, err := l.lintOne(path)
			if err != nil {
				l.recordFailure(path, err)
				return nil
			}
			results[i] = diagnostics
			return nil
		})
	}
	_ = group.Wait()

	batch := make([]Diagnostic, 0)
	for _, diagnostics := range results {
		batch = append(batch, diagnostics...)
	}
	l.append(batch)
	return batch
}

func (l *Linter) recordFailure(path string, err error) {
	if errors.IsCode(err, errors.CodeParseFailure) {
		l.mu.Lock()
		l.parseFailures++
		l.mu.Unlock()
	}
	slog.Warn("skipping file", "path", path, "error", err)
}

func (l *Linter) append(diagnostics []Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}
	l.mu.Lock()
	l.diagnostics = append(l.diagnostics, diagnostics...)
	l.mu.Unlock()
}

// Diagnostics returns everything accumulated since the last Reset.
func (l *Linter) Diagnostics() []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Diagnostic, len(l.diagnostics))
	copy(out, l.diagnostics)
	return out
}

// ParseFailures returns the number of files rejected by both parse attempts
// since the last Reset.
func (l *Linter) ParseFailures() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.parseFailures
}

// Reset clears the accumulator so the linter can be reused across repeated
// invocations, e.g. in watch mode.
func (l *Linter) Reset() {
	l.mu.Lock()
	l.diagnostics = nil
	l.parseFailures = 0
	l.mu.Unlock()
}
