// # internal/engine/lint/diagnostic.go
package lint

import (
	"fmt"

	"lazyimport/internal/engine/ast"
)

// RuleID identifies the single rule this linter ships.
const RuleID = "lazy-import-heavy-js-deps"

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is a recognized severity.
func (s Severity) Valid() bool {
	return s == SeverityWarning || s == SeverityError
}

// Diagnostic is one reported finding. Immutable once created.
type Diagnostic struct {
	File      string
	Rule      string
	Severity  Severity
	Message   string
	Specifier string
	Location  ast.Position
}

// Emit converts a file's classification into diagnostics, one per distinct
// top-level heavy specifier in first-occurrence order. Lazy entries are the
// already-correct pattern and produce nothing.
func Emit(result *Result, file string, severity Severity) []Diagnostic {
	entries := result.TopLevelHeavy()
	if len(entries) == 0 {
		return nil
	}
	diagnostics := make([]Diagnostic, 0, len(entries))
	for _, entry := range entries {
		diagnostics = append(diagnostics, Diagnostic{
			File:      file,
			Rule:      RuleID,
			Severity:  severity,
			Specifier: entry.Specifier,
			Location:  entry.Location,
			Message: fmt.Sprintf(
				"heavy dependency %q is loaded at module top level; defer it with a dynamic import() or move the require() into the function that uses it",
				entry.Specifier,
			),
		})
	}
	return diagnostics
}
