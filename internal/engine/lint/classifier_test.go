// # internal/engine/lint/classifier_test.go
package lint

import (
	"testing"

	"lazyimport/internal/engine/ast"
	"lazyimport/internal/engine/rule"
	"lazyimport/internal/engine/walker"
)

func stringNode(value string) *ast.Node {
	return &ast.Node{Kind: ast.KindString, Grammar: "string", Text: value}
}

func call(callee *ast.Node, args ...*ast.Node) *ast.Node {
	return &ast.Node{
		Kind:    ast.KindCallExpression,
		Grammar: "call_expression",
		Fields: []ast.Field{
			{Name: ast.FieldFunction, Nodes: []*ast.Node{callee}},
			{Name: ast.FieldArguments, Nodes: args},
		},
	}
}

func requireCall(args ...*ast.Node) *ast.Node {
	return call(&ast.Node{Kind: ast.KindIdentifier, Grammar: "identifier", Text: "require"}, args...)
}

func dynamicImport(args ...*ast.Node) *ast.Node {
	return call(&ast.Node{Kind: ast.KindImportOperator, Grammar: "import"}, args...)
}

func staticImport(specifier string) *ast.Node {
	return &ast.Node{
		Kind:    ast.KindImportDeclaration,
		Grammar: "import_statement",
		Fields:  []ast.Field{{Name: ast.FieldSource, Nodes: []*ast.Node{stringNode(specifier)}}},
	}
}

func inFunction(body ...*ast.Node) *ast.Node {
	return &ast.Node{
		Kind:    ast.KindFunctionDecl,
		Grammar: "function_declaration",
		Fields: []ast.Field{
			{Name: ast.FieldBody, Nodes: []*ast.Node{{
				Kind:    ast.KindOther,
				Grammar: "statement_block",
				Fields:  []ast.Field{{Name: ast.FieldChildren, Nodes: body}},
			}}},
		},
	}
}

func program(body ...*ast.Node) *ast.Node {
	return &ast.Node{
		Kind:    ast.KindProgram,
		Grammar: "program",
		Fields:  []ast.Field{{Name: ast.FieldBody, Nodes: body}},
	}
}

func classify(t *testing.T, tree *ast.Node, heavy rule.HeavySet) *Result {
	t.Helper()
	c := NewClassifier(heavy)
	walker.Walk(tree, walker.NewScopeTracker(), c.OnEnter)
	return c.Result()
}

func specifiers(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Specifier)
	}
	return out
}

func TestClassifierTopLevelRequire(t *testing.T) {
	tree := program(requireCall(stringNode("webpack")))
	result := classify(t, tree, rule.NewHeavySet("webpack"))

	top := specifiers(result.TopLevelHeavy())
	if len(top) != 1 || top[0] != "webpack" {
		t.Errorf("expected topLevelHeavy [webpack], got %v", top)
	}
	if len(result.LazyHeavy()) != 0 {
		t.Errorf("expected no lazyHeavy entries, got %v", result.LazyHeavy())
	}
}

func TestClassifierNestedRequireIsLazy(t *testing.T) {
	tree := program(inFunction(requireCall(stringNode("lodash"))))
	result := classify(t, tree, rule.NewHeavySet("lodash"))

	if len(result.TopLevelHeavy()) != 0 {
		t.Errorf("expected no topLevelHeavy entries, got %v", result.TopLevelHeavy())
	}
	lazy := specifiers(result.LazyHeavy())
	if len(lazy) != 1 || lazy[0] != "lodash" {
		t.Errorf("expected lazyHeavy [lodash], got %v", lazy)
	}
}

func TestClassifierDynamicImportAlwaysLazy(t *testing.T) {
	// Dynamic import yields a deferred value even at module top level.
	tree := program(
		dynamicImport(stringNode("lodash")),
		inFunction(dynamicImport(stringNode("webpack"))),
	)
	result := classify(t, tree, rule.NewHeavySet("lodash", "webpack"))

	if len(result.TopLevelHeavy()) != 0 {
		t.Errorf("dynamic imports must never be top-level, got %v", result.TopLevelHeavy())
	}
	lazy := specifiers(result.LazyHeavy())
	if len(lazy) != 2 || lazy[0] != "lodash" || lazy[1] != "webpack" {
		t.Errorf("expected lazyHeavy [lodash webpack], got %v", lazy)
	}
}

func TestClassifierStaticImportTopLevelOnly(t *testing.T) {
	tree := program(
		staticImport("webpack"),
		// Grammar-illegal nesting: ignored defensively, not classified.
		inFunction(staticImport("moment")),
	)
	result := classify(t, tree, rule.NewHeavySet("webpack", "moment"))

	top := specifiers(result.TopLevelHeavy())
	if len(top) != 1 || top[0] != "webpack" {
		t.Errorf("expected topLevelHeavy [webpack], got %v", top)
	}
	if len(result.LazyHeavy()) != 0 {
		t.Errorf("expected no lazyHeavy entries, got %v", result.LazyHeavy())
	}
}

func TestClassifierDeduplicates(t *testing.T) {
	tree := program(
		requireCall(stringNode("react")),
		requireCall(stringNode("react")),
	)
	result := classify(t, tree, rule.NewHeavySet("react"))

	if len(result.TopLevelHeavy()) != 1 {
		t.Errorf("expected one deduplicated entry, got %v", result.TopLevelHeavy())
	}
}

func TestClassifierIgnoresNonHeavy(t *testing.T) {
	tree := program(requireCall(stringNode("express")))
	result := classify(t, tree, rule.NewHeavySet("webpack"))

	if len(result.TopLevelHeavy()) != 0 || len(result.LazyHeavy()) != 0 {
		t.Errorf("expected empty result, got top=%v lazy=%v", result.TopLevelHeavy(), result.LazyHeavy())
	}
}

func TestClassifierIgnoresComputedSpecifiers(t *testing.T) {
	tree := program(
		// require(name) — identifier argument, not statically determinable.
		requireCall(&ast.Node{Kind: ast.KindIdentifier, Grammar: "identifier", Text: "name"}),
		// require() — no arguments.
		requireCall(),
		// member expression callee, not bare require.
		call(&ast.Node{Kind: ast.KindOther, Grammar: "member_expression"}, stringNode("webpack")),
	)
	result := classify(t, tree, rule.NewHeavySet("webpack"))

	if len(result.TopLevelHeavy()) != 0 || len(result.LazyHeavy()) != 0 {
		t.Errorf("expected empty result, got top=%v lazy=%v", result.TopLevelHeavy(), result.LazyHeavy())
	}
}

func TestClassifierEmptyHeavySet(t *testing.T) {
	tree := program(
		staticImport("webpack"),
		requireCall(stringNode("lodash")),
		dynamicImport(stringNode("moment")),
	)
	result := classify(t, tree, rule.NewHeavySet())

	if len(result.TopLevelHeavy()) != 0 || len(result.LazyHeavy()) != 0 {
		t.Errorf("empty heavy set must classify nothing, got top=%v lazy=%v",
			result.TopLevelHeavy(), result.LazyHeavy())
	}
}

func TestClassifierInsertionOrder(t *testing.T) {
	tree := program(
		requireCall(stringNode("moment")),
		requireCall(stringNode("webpack")),
		requireCall(stringNode("moment")),
	)
	result := classify(t, tree, rule.NewHeavySet("webpack", "moment"))

	top := specifiers(result.TopLevelHeavy())
	if len(top) != 2 || top[0] != "moment" || top[1] != "webpack" {
		t.Errorf("expected first-occurrence order [moment webpack], got %v", top)
	}
}
