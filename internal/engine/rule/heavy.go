// # internal/engine/rule/heavy.go
package rule

import (
	"strings"
)

// defaultHeavyDeps are package names considered expensive to initialize at
// module load time. Entries are bare package names; scoped packages carry
// their @scope/ prefix but never a sub-path.
var defaultHeavyDeps = []string{
	"webpack",
	"typescript",
	"@babel/core",
	"eslint",
	"prettier",
	"jest",
	"rollup",
	"vite",
	"postcss",
	"lodash",
	"moment",
	"react",
	"react-dom",
	"rxjs",
	"aws-sdk",
	"puppeteer",
}

// HeavySet is an insertion-ordered set of heavy dependency base names.
type HeavySet struct {
	names []string
	index map[string]bool
}

// NewHeavySet builds a set from bare package names. Entries with a sub-path
// (anything past the package name itself) are dropped: matching is the
// matcher's job, the set only holds base names.
func NewHeavySet(names ...string) HeavySet {
	s := HeavySet{index: make(map[string]bool, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || s.index[name] {
			continue
		}
		if !validBaseName(name) {
			continue
		}
		s.names = append(s.names, name)
		s.index[name] = true
	}
	return s
}

// Default returns the built-in heavy dependency set.
func Default() HeavySet {
	return NewHeavySet(defaultHeavyDeps...)
}

// Extend returns a new set with extra names appended after the existing ones.
func (s HeavySet) Extend(names ...string) HeavySet {
	merged := make([]string, 0, len(s.names)+len(names))
	merged = append(merged, s.names...)
	merged = append(merged, names...)
	return NewHeavySet(merged...)
}

// Names returns the entries in insertion order.
func (s HeavySet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s HeavySet) Len() int {
	return len(s.names)
}

// validBaseName rejects entries carrying a sub-path. A single separator is
// allowed only as part of a scoped package name (@scope/name).
func validBaseName(name string) bool {
	if strings.HasPrefix(name, "@") {
		return strings.Count(name, "/") == 1
	}
	return !strings.Contains(name, "/")
}

// IsHeavy reports whether specifier names a heavy dependency. Matching is on
// full path-segment boundaries only, in order:
//
//  1. exact membership,
//  2. sub-path of a set entry (dep/sub, @scope/dep/sub),
//  3. scope of the same name as an unscoped entry (@dep/sub),
//  4. scope-wrapped fork of an unscoped entry (@anyorg/dep, @anyorg/dep/sub).
//
// "webpackx" never matches "webpack".
func IsHeavy(specifier string, set HeavySet) bool {
	if specifier == "" || set.Len() == 0 {
		return false
	}
	if set.index[specifier] {
		return true
	}
	for _, dep := range set.names {
		if strings.HasPrefix(specifier, dep+"/") {
			return true
		}
		if strings.HasPrefix(dep, "@") {
			continue
		}
		if strings.HasPrefix(specifier, "@"+dep+"/") {
			return true
		}
		if scopeWrapped(specifier, dep) {
			return true
		}
	}
	return false
}

// scopeWrapped reports whether specifier is @<scope>/<dep> or
// @<scope>/<dep>/<rest> for an unscoped dep, covering organization forks of
// a known package name.
func scopeWrapped(specifier, dep string) bool {
	if !strings.HasPrefix(specifier, "@") {
		return false
	}
	slash := strings.Index(specifier, "/")
	if slash < 0 {
		return false
	}
	rest := specifier[slash+1:]
	return rest == dep || strings.HasPrefix(rest, dep+"/")
}
