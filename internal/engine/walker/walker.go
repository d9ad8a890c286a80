// # internal/engine/walker/walker.go
package walker

import (
	"lazyimport/internal/engine/ast"
)

// ScopeTracker counts the function boundaries enclosing the current
// traversal position. Depth 0 means module top level. The counter is owned
// by a single traversal call and never shared.
type ScopeTracker struct {
	depth int
}

func NewScopeTracker() *ScopeTracker {
	return &ScopeTracker{}
}

// EnterIfBoundary increments the depth when node opens a function scope and
// reports whether it did. The return value must be handed back to Exit.
func (t *ScopeTracker) EnterIfBoundary(n *ast.Node) bool {
	if n == nil || !n.Kind.IsFunctionBoundary() {
		return false
	}
	t.depth++
	return true
}

// Exit undoes a matching EnterIfBoundary. Strict push/pop discipline: the
// depth returns to its pre-traversal value after a complete walk.
func (t *ScopeTracker) Exit(entered bool) {
	if entered {
		t.depth--
	}
}

// Depth returns the current nesting depth.
func (t *ScopeTracker) Depth() int {
	return t.depth
}

// Walk performs a depth-first pre-order traversal. onEnter is invoked for
// every node together with the scope depth at that node; recursion then
// proceeds into the node's child fields in schema order, and within a field
// in sequence order. Function-boundary nodes raise the depth for their
// children only. The walk is synchronous and visits each node exactly once.
func Walk(root *ast.Node, scope *ScopeTracker, onEnter func(n *ast.Node, depth int)) {
	if root == nil || onEnter == nil {
		return
	}
	if scope == nil {
		scope = NewScopeTracker()
	}
	walk(root, scope, onEnter)
}

func walk(n *ast.Node, scope *ScopeTracker, onEnter func(n *ast.Node, depth int)) {
	onEnter(n, scope.Depth())

	entered := scope.EnterIfBoundary(n)
	defer scope.Exit(entered)

	for _, field := range n.Fields {
		for _, child := range field.Nodes {
			if child == nil {
				continue
			}
			walk(child, scope, onEnter)
		}
	}
}
