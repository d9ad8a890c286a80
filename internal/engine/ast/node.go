// # internal/engine/ast/node.go
package ast

// Kind tags the grammar production of a Node. The linter only distinguishes
// the productions it needs to recognize; everything else is KindOther.
type Kind string

const (
	KindProgram           Kind = "program"
	KindImportDeclaration Kind = "import_declaration"
	KindCallExpression    Kind = "call_expression"
	KindFunctionDecl      Kind = "function_declaration"
	KindFunctionExpr      Kind = "function_expression"
	KindArrowFunction     Kind = "arrow_function"
	KindMethodDefinition  Kind = "method_definition"
	KindString            Kind = "string"
	KindIdentifier        Kind = "identifier"
	KindImportOperator    Kind = "import_operator"
	KindOther             Kind = "other"
)

// IsFunctionBoundary reports whether nodes of this kind open a new scope
// depth level. Only function bodies count: class and block bodies do not,
// because their contents still execute at module evaluation time.
func (k Kind) IsFunctionBoundary() bool {
	switch k {
	case KindFunctionDecl, KindFunctionExpr, KindArrowFunction, KindMethodDefinition:
		return true
	}
	return false
}

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
}

// Node is a tagged variant over the productions the linter recognizes.
// Recognized kinds carry their children in schema field order; KindOther
// carries only the generic ordered child list. Leaf kinds (string,
// identifier, import operator) carry their payload in Text.
type Node struct {
	Kind    Kind
	Grammar string // raw production name from the parse front-end
	Text    string // unquoted string value or identifier name, leaf kinds only
	Fields  []Field
	Start   Position
}

// Field is one named, ordered group of children.
type Field struct {
	Name  string
	Nodes []*Node
}

// Field returns the children stored under name, or nil.
func (n *Node) Field(name string) []*Node {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Nodes
		}
	}
	return nil
}

// FirstOf returns the first child stored under name, or nil.
func (n *Node) FirstOf(name string) *Node {
	nodes := n.Field(name)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
