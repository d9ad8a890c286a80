// # internal/engine/ast/adapter.go
package ast

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// kindTable maps tree-sitter production names (shared by the javascript,
// typescript and tsx grammars) onto the linter's recognized kinds.
var kindTable = map[string]Kind{
	"program":                        KindProgram,
	"import_statement":               KindImportDeclaration,
	"call_expression":                KindCallExpression,
	"function_declaration":           KindFunctionDecl,
	"generator_function_declaration": KindFunctionDecl,
	"function_expression":            KindFunctionExpr,
	"function":                       KindFunctionExpr, // older grammar name
	"generator_function":             KindFunctionExpr,
	"arrow_function":                 KindArrowFunction,
	"method_definition":              KindMethodDefinition,
	"string":                         KindString,
	"identifier":                     KindIdentifier,
	"import":                         KindImportOperator,
}

// FromSitter converts a parsed tree-sitter tree into the linter's own AST.
// The returned tree owns no references into the sitter tree, so the caller
// may Close the tree (and return the parser to its pool) immediately after.
func FromSitter(root *sitter.Node, source []byte) *Node {
	if root == nil {
		return nil
	}
	return convert(root, source)
}

func convert(n *sitter.Node, source []byte) *Node {
	grammar := n.Kind()
	kind, ok := kindTable[grammar]
	if !ok {
		kind = KindOther
	}

	node := &Node{
		Kind:    kind,
		Grammar: grammar,
		Start: Position{
			Line:   int(n.StartPosition().Row) + 1,
			Column: int(n.StartPosition().Column) + 1,
		},
	}

	switch kind {
	case KindString:
		node.Text = stringValue(n, source)
	case KindIdentifier:
		node.Text = nodeText(n, source)
	case KindImportOperator:
		// leaf, no payload
	case KindProgram:
		node.Fields = []Field{{Name: FieldBody, Nodes: namedChildren(n, source)}}
	case KindImportDeclaration:
		node.Fields = fieldSingle(n, source, FieldSource)
	case KindCallExpression:
		fields := fieldSingle(n, source, FieldFunction)
		if args := n.ChildByFieldName(FieldArguments); args != nil {
			fields = append(fields, Field{Name: FieldArguments, Nodes: namedChildren(args, source)})
		}
		node.Fields = fields
	case KindFunctionDecl, KindFunctionExpr, KindMethodDefinition:
		node.Fields = functionFields(n, source, FieldName, FieldParameters, FieldBody)
	case KindArrowFunction:
		// Arrow grammars expose either a bare "parameter" or a formal
		// "parameters" list depending on the form.
		node.Fields = functionFields(n, source, "parameter", FieldParameters, FieldBody)
	default:
		node.Fields = []Field{{Name: FieldChildren, Nodes: namedChildren(n, source)}}
	}
	return node
}

func fieldSingle(n *sitter.Node, source []byte, name string) []Field {
	child := n.ChildByFieldName(name)
	if child == nil {
		return nil
	}
	return []Field{{Name: name, Nodes: []*Node{convert(child, source)}}}
}

func functionFields(n *sitter.Node, source []byte, names ...string) []Field {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		child := n.ChildByFieldName(name)
		if child == nil {
			continue
		}
		fields = append(fields, Field{Name: name, Nodes: []*Node{convert(child, source)}})
	}
	return fields
}

func namedChildren(n *sitter.Node, source []byte) []*Node {
	count := n.ChildCount()
	nodes := make([]*Node, 0, count)
	for i := uint(0); i < count; i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		nodes = append(nodes, convert(child, source))
	}
	return nodes
}

// stringValue returns the literal value of a string node without its quotes.
// Fragments are concatenated so escape-free literals round-trip exactly.
func stringValue(n *sitter.Node, source []byte) string {
	var sb strings.Builder
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "string_fragment", "escape_sequence":
			sb.WriteString(rawText(child, source))
		}
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	// Grammar variants without fragment nodes: strip the quote characters.
	return strings.Trim(rawText(n, source), `"'`)
}

func nodeText(n *sitter.Node, source []byte) string {
	return strings.TrimSpace(rawText(n, source))
}

func rawText(n *sitter.Node, source []byte) string {
	start := n.StartByte()
	end := n.EndByte()
	if start >= end || end > uint(len(source)) {
		return ""
	}
	return string(source[start:end])
}
