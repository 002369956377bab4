// Package ops implements the thin plan/apply/undo/redo/status/history
// orchestrators (spec component M): each loads state, invokes the
// scanner/apply/history/lock packages, and returns a structured result
// for cmd/ to render. No package outside cmd/ imports ops -- it is the
// top of the dependency graph.
package ops

import (
	"fmt"
	"path/filepath"

	"github.com/renamify-go/renamify/pkg/lock"
	"github.com/renamify-go/renamify/pkg/types"
)

// notFoundError wraps types.ErrNoMatches with the term that produced no
// hits.
func notFoundError(term string) error {
	return fmt.Errorf("%w: no occurrences of %q found", types.ErrNoMatches, term)
}

// StateDirName is the per-working-copy state directory's basename.
const StateDirName = ".renamify"

// StateDir returns the state directory for a working copy rooted at
// root.
func StateDir(root string) string {
	return filepath.Join(root, StateDirName)
}

// BackupsDir returns the root of the backup trees for a state directory.
func BackupsDir(stateDir string) string {
	return filepath.Join(stateDir, "backups")
}

// LogsDir returns the per-apply log directory for a state directory.
func LogsDir(stateDir string) string {
	return filepath.Join(stateDir, "logs")
}

// withLock acquires the single-writer lock over stateDir, runs fn, and
// releases it regardless of fn's outcome.
func withLock(stateDir string, fn func() error) error {
	l, err := lock.Acquire(stateDir)
	if err != nil {
		return err
	}
	defer l.Release()
	return fn()
}

// DefaultLargeThreshold is the total-match count above which Plan
// requires --large to proceed, matching spec.md §7's
// "large-change-without---large" user-input error.
const DefaultLargeThreshold = 500

// resolveStyles computes the effective style list from the three
// style-filtering flags in spec.md §6: only (if set, wins outright),
// otherwise all styles minus exclude plus include.
func resolveStyles(only, include, exclude []types.Style) []types.Style {
	if len(only) > 0 {
		return only
	}
	excluded := make(map[types.Style]bool, len(exclude))
	for _, s := range exclude {
		excluded[s] = true
	}
	var out []types.Style
	for _, s := range types.AllStyles {
		if !excluded[s] {
			out = append(out, s)
		}
	}
	for _, s := range include {
		if !containsStyle(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func containsStyle(styles []types.Style, s types.Style) bool {
	for _, x := range styles {
		if x == s {
			return true
		}
	}
	return false
}

// resolveAtomicIdentifiers builds the AtomicIdentifiers list the variant
// generator treats as opaque single tokens, from the --atomic,
// --atomic-search, --atomic-replace flags plus config.toml's atomic[].
func resolveAtomicIdentifiers(search, replace string, atomic, atomicSearch, atomicReplace bool, configured []string) []string {
	var out []string
	out = append(out, configured...)
	if atomic || atomicSearch {
		out = append(out, search)
	}
	if atomic || atomicReplace {
		out = append(out, replace)
	}
	return out
}
