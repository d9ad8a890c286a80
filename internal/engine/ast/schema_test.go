// # internal/engine/ast/schema_test.go
package ast

import "testing"

func TestFieldsOfRecognizedKinds(t *testing.T) {
	specs, ok := FieldsOf(KindCallExpression)
	if !ok {
		t.Fatal("expected a schema entry for call expressions")
	}
	if len(specs) != 2 || specs[0].Name != FieldFunction || specs[1].Name != FieldArguments {
		t.Errorf("unexpected call expression schema: %+v", specs)
	}
	if specs[0].Arity != Single || specs[1].Arity != Sequence {
		t.Errorf("unexpected call expression arities: %+v", specs)
	}
}

func TestFieldsOfLeafAndGenericKinds(t *testing.T) {
	for _, kind := range []Kind{KindString, KindIdentifier, KindImportOperator, KindOther} {
		if _, ok := FieldsOf(kind); ok {
			t.Errorf("kind %v must not carry a schema entry", kind)
		}
	}
}

func TestSchemaCoversAllFunctionBoundaries(t *testing.T) {
	for kind := range Schema {
		if kind.IsFunctionBoundary() {
			specs, _ := FieldsOf(kind)
			last := specs[len(specs)-1]
			if last.Name != FieldBody {
				t.Errorf("function kind %v must end with a body field, got %q", kind, last.Name)
			}
		}
	}
}

func TestNodeFieldAccessors(t *testing.T) {
	str := &Node{Kind: KindString, Text: "webpack"}
	call := &Node{
		Kind: KindCallExpression,
		Fields: []Field{
			{Name: FieldFunction, Nodes: []*Node{{Kind: KindIdentifier, Text: "require"}}},
			{Name: FieldArguments, Nodes: []*Node{str}},
		},
	}

	if got := call.FirstOf(FieldFunction); got == nil || got.Text != "require" {
		t.Errorf("FirstOf(function) = %+v", got)
	}
	if got := call.Field(FieldArguments); len(got) != 1 || got[0] != str {
		t.Errorf("Field(arguments) = %+v", got)
	}
	if got := call.Field("missing"); got != nil {
		t.Errorf("Field(missing) = %+v, want nil", got)
	}
	if got := call.FirstOf("missing"); got != nil {
		t.Errorf("FirstOf(missing) = %+v, want nil", got)
	}
}

func TestIsFunctionBoundary(t *testing.T) {
	boundaries := []Kind{KindFunctionDecl, KindFunctionExpr, KindArrowFunction, KindMethodDefinition}
	for _, kind := range boundaries {
		if !kind.IsFunctionBoundary() {
			t.Errorf("%v must be a function boundary", kind)
		}
	}
	others := []Kind{KindProgram, KindImportDeclaration, KindCallExpression, KindString, KindOther}
	for _, kind := range others {
		if kind.IsFunctionBoundary() {
			t.Errorf("%v must not be a function boundary", kind)
		}
	}
}
