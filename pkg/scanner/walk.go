// Package scanner walks a tree honouring a layered ignore model, matches
// every file's content and every path's basename against a VariantMap
// plus compound identifiers, and emits the MatchHunks and Renames that
// make up a Plan (spec component H).
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/bmatcuk/doublestar/v4"
)

// UnrestrictedLevel controls how much of the layered ignore model is
// honoured, mirroring ripgrep's -u/-uu/-uuu flags.
type UnrestrictedLevel int

const (
	// LevelDefault honours .gitignore, the global git ignore file, git
	// exclude, .ignore, .rgignore, .rnignore, and skips hidden entries.
	LevelDefault UnrestrictedLevel = 0
	// LevelNoGitignore ignores .gitignore but still honours the other
	// ignore files, and still skips hidden entries.
	LevelNoGitignore UnrestrictedLevel = 1
	// LevelAll honours no ignore file and includes hidden entries.
	LevelAll UnrestrictedLevel = 2
	// LevelAllBinary is LevelAll plus treating binary files as text.
	LevelAllBinary UnrestrictedLevel = 3
)

// layeredIgnoreFiles are consulted at LevelDefault and LevelNoGitignore.
var layeredIgnoreFiles = []string{".ignore", ".rgignore", ".rnignore"}

// dirIgnore bundles the compiled matchers that apply within one
// directory and its descendants.
type dirIgnore struct {
	parent  *dirIgnore
	matches []*gitignore.GitIgnore
}

func (d *dirIgnore) ignores(relPath string, isDir bool) bool {
	for n := d; n != nil; n = n.parent {
		for _, m := range n.matches {
			if m.MatchesPath(relPath) {
				return true
			}
		}
	}
	return false
}

// walker accumulates the file list during Walk.
type walker struct {
	root            string
	level           UnrestrictedLevel
	includes        []string
	excludes        []string
	globalGitignore *gitignore.GitIgnore
}

// Walk returns every regular file under root honouring the configured
// ignore layering and include/exclude globs, sorted by path for
// deterministic scan output.
func Walk(root string, level UnrestrictedLevel, includes, excludes []string) ([]string, error) {
	w := &walker{root: root, level: level, includes: includes, excludes: excludes}
	if level <= LevelNoGitignore {
		w.globalGitignore = loadGlobalGitignore()
	}

	var files []string
	err := w.walkDir(root, root, nil, &files)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (w *walker) walkDir(root, dir string, parent *dirIgnore, files *[]string) error {
	node := &dirIgnore{parent: parent}
	if w.level <= LevelNoGitignore {
		if w.level == LevelDefault {
			if gi, err := gitignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil {
				node.matches = append(node.matches, gi)
			}
			if w.globalGitignore != nil && dir == root {
				node.matches = append(node.matches, w.globalGitignore)
			}
			if dir == root {
				if gi, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".git", "info", "exclude")); err == nil {
					node.matches = append(node.matches, gi)
				}
			}
		}
		for _, name := range layeredIgnoreFiles {
			if gi, err := gitignore.CompileIgnoreFile(filepath.Join(dir, name)); err == nil {
				node.matches = append(node.matches, gi)
			}
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		if name == ".git" {
			continue
		}
		full := filepath.Join(dir, name)
		rel, _ := filepath.Rel(root, full)
		rel = filepath.ToSlash(rel)

		if w.level < LevelAll && strings.HasPrefix(name, ".") {
			continue
		}
		if w.level <= LevelNoGitignore && node.ignores(rel, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if entry.Type()&os.ModeSymlink != 0 {
				continue
			}
			if err := w.walkDir(root, full, node, files); err != nil {
				return err
			}
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		if !w.passesGlobs(rel) {
			continue
		}
		*files = append(*files, full)
	}
	return nil
}

func (w *walker) passesGlobs(rel string) bool {
	if len(w.includes) > 0 {
		matched := false
		for _, pat := range w.includes {
			if ok, _ := doublestar.Match(pat, rel); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pat := range w.excludes {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return false
		}
	}
	return true
}

func loadGlobalGitignore() *gitignore.GitIgnore {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	gi, err := gitignore.CompileIgnoreFile(filepath.Join(home, ".gitignore_global"))
	if err != nil {
		return nil
	}
	return gi
}

// IsBinary applies a simple NUL-byte heuristic over the first 8000 bytes,
// the same sniff window common grep/ripgrep-alikes use.
func IsBinary(content []byte) bool {
	n := len(content)
	if n > 8000 {
		n = 8000
	}
	for i := 0; i < n; i++ {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
