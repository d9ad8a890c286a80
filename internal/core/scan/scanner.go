// # internal/core/scan/scanner.go
package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// dependencyCacheDir is always skipped: third-party code is not ours to lint.
const dependencyCacheDir = "node_modules"

// Scanner discovers lintable source files under a set of roots. Hidden
// directories, dependency caches and configured glob excludes are skipped;
// unreadable subtrees are treated as empty, never as a fatal error.
type Scanner struct {
	supported    func(path string) bool
	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob
}

func NewScanner(supported func(path string) bool, excludeDirs, excludeFiles []string) (*Scanner, error) {
	s := &Scanner{supported: supported}

	for _, pattern := range excludeDirs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		s.excludeDirs = append(s.excludeDirs, g)
	}
	for _, pattern := range excludeFiles {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		s.excludeFiles = append(s.excludeFiles, g)
	}
	return s, nil
}

// Discover returns the matching files under roots in sorted order. Roots may
// be directories or explicit file paths; explicit files still pass through
// the extension filter.
func (s *Scanner) Discover(roots []string) []string {
	seen := make(map[string]bool)
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			slog.Warn("skipping unreadable target", "path", root, "error", err)
			continue
		}

		if !info.IsDir() {
			if s.includeFile(root) && !seen[root] {
				seen[root] = true
				files = append(files, root)
			}
			continue
		}

		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Permission or IO failure on a subtree: no files there.
				slog.Debug("skipping unreadable subtree", "path", path, "error", err)
				return nil
			}

			base := filepath.Base(path)
			if d.IsDir() {
				if path != root && s.excludeDir(base) {
					return filepath.SkipDir
				}
				return nil
			}

			if !s.includeFile(path) || seen[path] {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
	}

	sort.Strings(files)
	return files
}

func (s *Scanner) excludeDir(base string) bool {
	if base == dependencyCacheDir {
		return true
	}
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, g := range s.excludeDirs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

func (s *Scanner) includeFile(path string) bool {
	if s.supported != nil && !s.supported(path) {
		return false
	}
	base := filepath.Base(path)
	for _, g := range s.excludeFiles {
		if g.Match(base) {
			return false
		}
	}
	return true
}
