// # internal/engine/ast/schema.go
package ast

// Arity distinguishes single-child fields from ordered sequences.
type Arity int

const (
	Single Arity = iota
	Sequence
)

// FieldSpec names one child field of a recognized kind, in grammar order.
type FieldSpec struct {
	Name  string
	Arity Arity
}

// Schema maps each recognized non-leaf kind to its ordered child fields.
// Traversal is driven by this closed table rather than by runtime
// introspection of whatever fields a node happens to carry; a recognized
// kind missing from the table is a detectable condition (FieldsOf returns
// false), not silent best-effort walking.
var Schema = map[Kind][]FieldSpec{
	KindProgram:           {{Name: FieldBody, Arity: Sequence}},
	KindImportDeclaration: {{Name: FieldSource, Arity: Single}},
	KindCallExpression: {
		{Name: FieldFunction, Arity: Single},
		{Name: FieldArguments, Arity: Sequence},
	},
	KindFunctionDecl: {
		{Name: FieldName, Arity: Single},
		{Name: FieldParameters, Arity: Sequence},
		{Name: FieldBody, Arity: Single},
	},
	KindFunctionExpr: {
		{Name: FieldName, Arity: Single},
		{Name: FieldParameters, Arity: Sequence},
		{Name: FieldBody, Arity: Single},
	},
	KindArrowFunction: {
		{Name: FieldParameters, Arity: Sequence},
		{Name: FieldBody, Arity: Single},
	},
	KindMethodDefinition: {
		{Name: FieldName, Arity: Single},
		{Name: FieldParameters, Arity: Sequence},
		{Name: FieldBody, Arity: Single},
	},
}

// Canonical field names used by Schema and the adapter.
const (
	FieldBody       = "body"
	FieldSource     = "source"
	FieldFunction   = "function"
	FieldArguments  = "arguments"
	FieldName       = "name"
	FieldParameters = "parameters"
	FieldChildren   = "children" // generic child list of KindOther
)

// FieldsOf returns the schema entry for a kind. ok is false for leaf kinds,
// KindOther and any kind absent from the table; callers fall back to the
// node's generic child list in that case.
func FieldsOf(kind Kind) ([]FieldSpec, bool) {
	specs, ok := Schema[kind]
	return specs, ok
}
