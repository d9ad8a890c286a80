// # internal/core/scan/scanner_test.go
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func isScript(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".js" || ext == ".ts"
}

func writeTree(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("// test\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func relativize(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscoverFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"src/b.js",
		"src/a.ts",
		"src/styles.css",
		"lib/c.js",
		"README.md",
	})

	s, err := NewScanner(isScript, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := relativize(t, root, s.Discover([]string{root}))
	want := []string{"lib/c.js", "src/a.ts", "src/b.js"}
	if !sort.StringsAreSorted(got) {
		t.Errorf("results not sorted: %v", got)
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscoverSkipsDependencyAndHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"src/ok.js",
		"node_modules/lodash/index.js",
		".git/hooks/pre-commit.js",
		".cache/tmp.js",
	})

	s, err := NewScanner(isScript, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := relativize(t, root, s.Discover([]string{root}))
	if len(got) != 1 || got[0] != "src/ok.js" {
		t.Errorf("expected only src/ok.js, got %v", got)
	}
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"src/app.js",
		"src/app.min.js",
		"dist/bundle.js",
	})

	s, err := NewScanner(isScript, []string{"dist"}, []string{"*.min.js"})
	if err != nil {
		t.Fatal(err)
	}

	got := relativize(t, root, s.Discover([]string{root}))
	if len(got) != 1 || got[0] != "src/app.js" {
		t.Errorf("expected only src/app.js, got %v", got)
	}
}

func TestDiscoverExplicitFileRoots(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{"one.js", "notes.txt"})

	s, err := NewScanner(isScript, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	script := filepath.Join(root, "one.js")
	text := filepath.Join(root, "notes.txt")

	got := s.Discover([]string{script, text, script})
	if len(got) != 1 || got[0] != script {
		t.Errorf("expected the deduplicated script only, got %v", got)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	s, err := NewScanner(isScript, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Discover([]string{filepath.Join(t.TempDir(), "absent")}); len(got) != 0 {
		t.Errorf("expected no files for a missing root, got %v", got)
	}
}

func TestNewScannerRejectsBadGlob(t *testing.T) {
	if _, err := NewScanner(isScript, []string{"[unclosed"}, nil); err == nil {
		t.Fatal("expected an error for an invalid glob pattern")
	}
}
