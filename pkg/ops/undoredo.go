package ops

import (
	"context"

	"github.com/renamify-go/renamify/pkg/apply"
	"github.com/renamify-go/renamify/pkg/history"
	"github.com/renamify-go/renamify/pkg/scanner"
	"github.com/renamify-go/renamify/pkg/types"
)

// Undo reverts the history entry identified by idOrLatest, restoring
// every affected file from its backup and reversing its renames.
func Undo(root, idOrLatest string) (types.HistoryEntry, error) {
	stateDir := StateDir(root)
	var revert types.HistoryEntry
	err := withLock(stateDir, func() error {
		h, err := history.Load(stateDir)
		if err != nil {
			return err
		}
		target, err := h.ResolveUndoTarget(idOrLatest)
		if err != nil {
			return err
		}
		revert, err = h.Undo(stateDir, target)
		return err
	})
	return revert, err
}

// Redo re-applies the reverted history entry identified by idOrLatest by
// re-scanning root for its original search/replace term and re-applying.
func Redo(ctx context.Context, root, idOrLatest string) (types.HistoryEntry, error) {
	stateDir := StateDir(root)
	var redone types.HistoryEntry
	err := withLock(stateDir, func() error {
		h, err := history.Load(stateDir)
		if err != nil {
			return err
		}
		target, err := h.ResolveRedoTarget(idOrLatest)
		if err != nil {
			return err
		}

		reapply := func(entry types.HistoryEntry) (types.ApplyResult, error) {
			plan, err := scanner.Scan(ctx, scanner.Options{
				Roots:       []string{root},
				Search:      entry.Search,
				Replace:     entry.Replace,
				Styles:      entry.Styles,
				Includes:    entry.Includes,
				Excludes:    entry.Excludes,
				RenameFiles: true,
				RenameDirs:  true,
				Plurals:     true,
			})
			if err != nil {
				return types.ApplyResult{}, err
			}
			result, err := apply.Apply(ctx, plan, types.ApplyOptions{
				BackupDir:     BackupsDir(stateDir),
				CreateBackups: true,
			})
			if err != nil {
				return types.ApplyResult{}, err
			}
			return *result, nil
		}

		redone, err = h.Redo(stateDir, target, reapply)
		return err
	})
	return redone, err
}
