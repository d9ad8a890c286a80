// # internal/engine/parser/loader.go
package parser

import (
	"fmt"
	"sort"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Language identifiers.
const (
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangTSX        = "tsx"
)

// defaultExtensions maps the recognized script-file extensions onto their
// primary grammar. The TOML languages section may extend this mapping.
var defaultExtensions = map[string]string{
	".js": LangJavaScript,
	".ts": LangTypeScript,
}

// GrammarLoader owns the compiled tree-sitter grammars and one parser pool
// per language.
type GrammarLoader struct {
	languages  map[string]*sitter.Language
	pools      map[string]*ParserPool
	extensions map[string]string
}

func NewGrammarLoader() (*GrammarLoader, error) {
	gl := &GrammarLoader{
		languages:  make(map[string]*sitter.Language),
		pools:      make(map[string]*ParserPool),
		extensions: make(map[string]string, len(defaultExtensions)),
	}
	for ext, lang := range defaultExtensions {
		gl.extensions[ext] = lang
	}

	gl.languages[LangJavaScript] = sitter.NewLanguage(tree_sitter_javascript.Language())
	gl.languages[LangTypeScript] = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	gl.languages[LangTSX] = sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())

	for lang, grammar := range gl.languages {
		gl.pools[lang] = NewParserPool(grammar)
	}
	return gl, nil
}

// AddExtensions registers extra file extensions for a language.
func (gl *GrammarLoader) AddExtensions(lang string, extensions []string) error {
	if _, ok := gl.languages[lang]; !ok {
		return fmt.Errorf("unknown language %q", lang)
	}
	for _, ext := range extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		gl.extensions[normalized] = lang
	}
	return nil
}

// LanguageFor returns the primary language for a file extension, or "".
func (gl *GrammarLoader) LanguageFor(ext string) string {
	return gl.extensions[strings.ToLower(ext)]
}

// SupportedExtensions returns the registered extensions in sorted order.
func (gl *GrammarLoader) SupportedExtensions() []string {
	extensions := make([]string, 0, len(gl.extensions))
	for ext := range gl.extensions {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}

// Pool returns the parser pool for a language, or nil.
func (gl *GrammarLoader) Pool(lang string) *ParserPool {
	return gl.pools[lang]
}
