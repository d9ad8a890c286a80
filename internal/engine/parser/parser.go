// # internal/engine/parser/parser.go
package parser

import (
	"path/filepath"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"lazyimport/internal/core/errors"
	"lazyimport/internal/engine/ast"
	"lazyimport/internal/shared/observability"
)

// errorSpanThreshold is the fraction of the source that may be covered by
// ERROR/MISSING nodes before a permissive parse attempt is rejected.
const errorSpanThreshold = 0.5

// Parser turns source text into the linter's AST. Parsing is a documented
// two-attempt strategy: the file's primary grammar first, rejected when the
// tree carries any syntax error; then the permissive tsx grammar, accepted
// unless errors dominate the file. Grammar differences between module-style
// and script-style sources are absorbed by the second attempt.
type Parser struct {
	loader *GrammarLoader
}

func NewParser(loader *GrammarLoader) *Parser {
	return &Parser{loader: loader}
}

// IsSupportedPath reports whether path carries a recognized extension.
func (p *Parser) IsSupportedPath(path string) bool {
	return p.loader.LanguageFor(filepath.Ext(path)) != ""
}

// GetLanguage returns the primary language for path, or "".
func (p *Parser) GetLanguage(path string) string {
	return p.loader.LanguageFor(filepath.Ext(path))
}

// ParseSource parses content and converts it into the linter's AST. The
// returned tree is fully materialized; no tree-sitter state outlives the
// call.
func (p *Parser) ParseSource(path string, content []byte) (*ast.Node, error) {
	lang := p.GetLanguage(path)
	if lang == "" {
		de := &errors.DomainError{Code: errors.CodeUnsupported, Message: "unsupported file extension"}
		return nil, de.WithContext(errors.CtxPath, path)
	}

	start := time.Now()
	defer func() {
		observability.ParsingDuration.WithLabelValues(lang).Observe(time.Since(start).Seconds())
	}()

	// Attempt 1: primary grammar, strict.
	if tree, ok := p.parseWith(lang, content, true); ok {
		node := ast.FromSitter(tree.RootNode(), content)
		tree.Close()
		return node, nil
	}

	// Attempt 2: permissive superset grammar. Localized errors are
	// tolerated because tree-sitter still recovers the surrounding import
	// and call structure.
	if tree, ok := p.parseWith(LangTSX, content, false); ok {
		observability.ParseFallbacksTotal.Inc()
		node := ast.FromSitter(tree.RootNode(), content)
		tree.Close()
		return node, nil
	}

	observability.ParseFailuresTotal.Inc()
	de := &errors.DomainError{Code: errors.CodeParseFailure, Message: "source not parsable under primary or fallback grammar"}
	return nil, de.WithContext(errors.CtxPath, path).WithContext(errors.CtxLanguage, lang)
}

// parseWith runs one parse attempt. In strict mode any syntax error rejects
// the tree; in permissive mode the tree is rejected only when the combined
// ERROR/MISSING span exceeds errorSpanThreshold of the source.
func (p *Parser) parseWith(lang string, content []byte, strict bool) (*sitter.Tree, bool) {
	pool := p.loader.Pool(lang)
	if pool == nil {
		return nil, false
	}

	sp := pool.Get()
	defer pool.Put(sp)

	tree := sp.Parse(content, nil)
	if tree == nil {
		return nil, false
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, false
	}

	if strict {
		if root.HasError() {
			tree.Close()
			return nil, false
		}
		return tree, true
	}

	if len(content) > 0 {
		ratio := float64(errorSpan(root)) / float64(len(content))
		if ratio > errorSpanThreshold {
			tree.Close()
			return nil, false
		}
	}
	return tree, true
}

// errorSpan sums the byte spans of ERROR and MISSING nodes without
// descending into them.
func errorSpan(n *sitter.Node) uint {
	if n == nil {
		return 0
	}
	if n.IsError() || n.IsMissing() {
		return n.EndByte() - n.StartByte()
	}
	if !n.HasError() {
		return 0
	}
	var total uint
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		total += errorSpan(n.Child(i))
	}
	return total
}
