// # internal/engine/lint/classifier.go
package lint

import (
	"lazyimport/internal/engine/ast"
	"lazyimport/internal/engine/rule"
)

// SyntaxForm distinguishes the three import-site shapes the linter
// recognizes.
type SyntaxForm string

const (
	FormStaticImport  SyntaxForm = "static-import"
	FormRequireCall   SyntaxForm = "require-call"
	FormDynamicImport SyntaxForm = "dynamic-import"
)

// importSite is the ephemeral record of one recognized import occurrence.
// It only lives for the duration of a single OnEnter call.
type importSite struct {
	specifier string
	form      SyntaxForm
	location  ast.Position
}

// Entry is one deduplicated specifier with the location of its first
// occurrence.
type Entry struct {
	Specifier string
	Location  ast.Position
}

// specifierSet is an insertion-ordered, deduplicated set of specifiers.
type specifierSet struct {
	order []Entry
	seen  map[string]bool
}

func newSpecifierSet() *specifierSet {
	return &specifierSet{seen: make(map[string]bool)}
}

func (s *specifierSet) add(specifier string, loc ast.Position) {
	if s.seen[specifier] {
		return
	}
	s.seen[specifier] = true
	s.order = append(s.order, Entry{Specifier: specifier, Location: loc})
}

func (s *specifierSet) entries() []Entry {
	out := make([]Entry, len(s.order))
	copy(out, s.order)
	return out
}

// Result is the classification outcome for one file: heavy imports that
// execute at module load time versus those already deferred. Created fresh
// per file and discarded once diagnostics are emitted.
type Result struct {
	topLevel *specifierSet
	lazy     *specifierSet
}

func NewResult() *Result {
	return &Result{
		topLevel: newSpecifierSet(),
		lazy:     newSpecifierSet(),
	}
}

// TopLevelHeavy returns the heavy specifiers loaded at module top level, in
// first-occurrence order.
func (r *Result) TopLevelHeavy() []Entry {
	return r.topLevel.entries()
}

// LazyHeavy returns the heavy specifiers already loaded lazily.
func (r *Result) LazyHeavy() []Entry {
	return r.lazy.entries()
}

// Classifier is the walk callback that recognizes import sites and routes
// heavy ones into the Result it owns. One Classifier serves exactly one
// traversal; the result is threaded through the instance rather than any
// shared state.
type Classifier struct {
	heavy  rule.HeavySet
	result *Result
}

func NewClassifier(heavy rule.HeavySet) *Classifier {
	return &Classifier{heavy: heavy, result: NewResult()}
}

// Result returns the accumulated classification.
func (c *Classifier) Result() *Result {
	return c.result
}

// OnEnter inspects one node at its scope depth. Static imports count only at
// depth 0; deeper occurrences are ignored. require() calls are routed by
// depth. Dynamic import() calls
// are always lazy, regardless of depth: the expression yields a deferred
// value even when it executes eagerly.
func (c *Classifier) OnEnter(n *ast.Node, depth int) {
	site, ok := recognize(n)
	if !ok || !rule.IsHeavy(site.specifier, c.heavy) {
		return
	}

	switch site.form {
	case FormStaticImport:
		if depth == 0 {
			c.result.topLevel.add(site.specifier, site.location)
		}
	case FormRequireCall:
		if depth == 0 {
			c.result.topLevel.add(site.specifier, site.location)
		} else {
			c.result.lazy.add(site.specifier, site.location)
		}
	case FormDynamicImport:
		c.result.lazy.add(site.specifier, site.location)
	}
}

// recognize extracts an import site from a node, if it is one. Non-string or
// computed specifiers cannot be statically determined and yield ok=false.
func recognize(n *ast.Node) (importSite, bool) {
	switch n.Kind {
	case ast.KindImportDeclaration:
		source := n.FirstOf(ast.FieldSource)
		if source == nil || source.Kind != ast.KindString || source.Text == "" {
			return importSite{}, false
		}
		return importSite{specifier: source.Text, form: FormStaticImport, location: n.Start}, true

	case ast.KindCallExpression:
		callee := n.FirstOf(ast.FieldFunction)
		if callee == nil {
			return importSite{}, false
		}

		var form SyntaxForm
		switch {
		case callee.Kind == ast.KindIdentifier && callee.Text == "require":
			form = FormRequireCall
		case callee.Kind == ast.KindImportOperator:
			form = FormDynamicImport
		default:
			return importSite{}, false
		}

		args := n.Field(ast.FieldArguments)
		if len(args) == 0 {
			return importSite{}, false
		}
		first := args[0]
		if first.Kind != ast.KindString || first.Text == "" {
			return importSite{}, false
		}
		return importSite{specifier: first.Text, form: form, location: n.Start}, true
	}
	return importSite{}, false
}
