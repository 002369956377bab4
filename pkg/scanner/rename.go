package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/compound"
	"github.com/renamify-go/renamify/pkg/pattern"
	"github.com/renamify-go/renamify/pkg/types"
)

// RenameOptions configures path-rename detection.
type RenameOptions struct {
	Search, Replace string
	Matcher         *pattern.Matcher
	Styles          []types.Style
	RenameFiles     bool
	RenameDirs      bool
	RenameRoot      bool
	Acronyms        *acronym.Set
}

// renameSite distinguishes a file path from a directory path
// discovered while walking, used internally before the rename is filtered
// by RenameFiles/RenameDirs.
type renameSite struct {
	path  string
	isDir bool
}

// FindRenames takes its candidates from files, the list Walk already
// filtered through the ignore layering and globs, plus every directory
// between those files and root (and root itself); ignored files and
// directories holding no walked file are not candidates. It returns
// every Rename whose basename contains a match, ordered
// deepest-path-first so intermediate directories remain valid under
// their pre-rename name until their own turn in apply's sequential walk.
func FindRenames(root string, files []string, opts RenameOptions) ([]types.Rename, error) {
	sites, err := collectRenameSites(root, files)
	if err != nil {
		return nil, err
	}

	var renames []types.Rename
	for _, site := range sites {
		if site.isDir && !opts.RenameDirs {
			continue
		}
		if !site.isDir && !opts.RenameFiles {
			continue
		}
		if site.path == root && !opts.RenameRoot {
			continue
		}

		dir, base := filepath.Split(site.path)
		newBase, changed := renameBasename(base, opts)
		if !changed {
			continue
		}
		kind := types.RenameFile
		if site.isDir {
			kind = types.RenameDir
		}
		renames = append(renames, types.Rename{
			Path:    site.path,
			NewPath: filepath.Join(dir, newBase),
			Kind:    kind,
		})
	}

	sortRenamesDeepestFirst(renames)
	return renames, nil
}

// collectRenameSites lists every directory under root (derived from the
// already-walked file list, since Walk already applied ignore/glob
// filtering to files) plus the files themselves.
func collectRenameSites(root string, files []string) ([]renameSite, error) {
	dirSet := map[string]bool{}
	for _, f := range files {
		dir := filepath.Dir(f)
		for dir != root && dir != "." && dir != string(filepath.Separator) {
			dirSet[dir] = true
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		dirSet[root] = true
	}

	var sites []renameSite
	for d := range dirSet {
		sites = append(sites, renameSite{path: d, isDir: true})
	}
	for _, f := range files {
		sites = append(sites, renameSite{path: f, isDir: false})
	}
	return sites, nil
}

func renameBasename(base string, opts RenameOptions) (string, bool) {
	for _, hit := range opts.Matcher.FindAll([]byte(base)) {
		if !pattern.IsBoundary([]byte(base), hit.Start, hit.End) {
			continue
		}
		if hit.Start == 0 && hit.End == len(base) {
			return hit.Entry.Replacement, hit.Entry.Replacement != base
		}
	}

	matches := compound.Find(base, opts.Search, opts.Replace, opts.Styles, opts.Acronyms)
	if len(matches) > 0 {
		return matches[0].Replacement, matches[0].Replacement != base
	}

	if hits := opts.Matcher.FindAll([]byte(base)); len(hits) > 0 {
		return rebuildFromHits(base, hits), true
	}

	return base, false
}

// rebuildFromHits substitutes every matcher hit in base, left to right,
// used when the match doesn't span the whole basename and isn't a
// compound-identifier shape either (e.g. "old_name.test.go").
func rebuildFromHits(base string, hits []pattern.Hit) string {
	var b strings.Builder
	last := 0
	for _, h := range hits {
		if !pattern.IsBoundary([]byte(base), h.Start, h.End) {
			continue
		}
		b.WriteString(base[last:h.Start])
		b.WriteString(h.Entry.Replacement)
		last = h.End
	}
	b.WriteString(base[last:])
	return b.String()
}

// sortRenamesDeepestFirst orders directory renames so that the deepest
// paths (most path separators) come first, matching spec.md 4.8's
// depth-first rename order; files sort ahead of directories at the same
// depth since file renames never invalidate a directory's pre-rename
// path.
func sortRenamesDeepestFirst(renames []types.Rename) {
	depth := func(p string) int { return strings.Count(filepath.ToSlash(p), "/") }
	sort.SliceStable(renames, func(i, j int) bool {
		di, dj := depth(renames[i].Path), depth(renames[j].Path)
		if di != dj {
			return di > dj
		}
		if renames[i].Kind != renames[j].Kind {
			return renames[i].Kind == types.RenameFile
		}
		return renames[i].Path < renames[j].Path
	})
}
