package history

import (
	"fmt"

	"github.com/renamify-go/renamify/pkg/types"
)

// ReapplyFunc re-scans the working tree for entry's original
// search/replace term and re-applies it, exactly the way a fresh
// plan+apply would. Supplied by pkg/ops so this package doesn't need to
// import pkg/scanner or pkg/apply's Plan-shaped entry point directly --
// Redo only owns the history-entry bookkeeping (spec component K); the
// re-scan-and-apply mechanics belong to the orchestrator (M) per
// spec.md's component table.
type ReapplyFunc func(entry types.HistoryEntry) (types.ApplyResult, error)

// Redo re-applies entry (which must already be reverted; callers use
// ResolveRedoTarget to find it) via reapply and appends a new
// HistoryEntry recording the redo. Per spec.md 9(b), this re-scans the
// tree rather than replaying the original Plan's exact hunks, so it may
// diverge from the original apply if the tree changed in the interim --
// the original behaviour this mirrors, not a gap introduced here.
func (h *History) Redo(stateDir string, entry types.HistoryEntry, reapply ReapplyFunc) (types.HistoryEntry, error) {
	result, err := reapply(entry)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("redo %s: %w", entry.ID, err)
	}

	redone := types.HistoryEntry{
		ID:            newID(),
		CreatedAt:     now(),
		Search:        entry.Search,
		Replace:       entry.Replace,
		Styles:        entry.Styles,
		Includes:      entry.Includes,
		Excludes:      entry.Excludes,
		AffectedFiles: result.AffectedFiles,
		Renames:       result.RenamePairs,
		BackupsPath:   entry.BackupsPath,
		RedoOf:        entry.ID,
	}
	if err := h.AddEntry(stateDir, redone); err != nil {
		return types.HistoryEntry{}, err
	}
	return redone, nil
}
