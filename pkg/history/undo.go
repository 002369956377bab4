package history

import (
	"fmt"

	"github.com/renamify-go/renamify/pkg/apply"
	"github.com/renamify-go/renamify/pkg/types"
)

// Undo restores every file touched by entry from its backup tree,
// reverses its renames (deepest-last, i.e. the exact inverse of the
// apply order that produced them), and appends a new revert
// HistoryEntry recording the restoration. It does not validate that
// idOrLatest resolves to entry -- callers use ResolveUndoTarget first so
// the validation error can be reported before any filesystem mutation.
func (h *History) Undo(stateDir string, entry types.HistoryEntry) (types.HistoryEntry, error) {
	restored := map[string]string{}
	for _, path := range sortedKeys(entry.AffectedFiles) {
		backupPath := apply.BackupMemberPath(entry.BackupsPath, path)
		if err := apply.CopyFile(backupPath, path); err != nil {
			return types.HistoryEntry{}, fmt.Errorf("undo %s: restoring %s: %w", entry.ID, path, err)
		}
		sum, err := apply.ChecksumFile(path)
		if err != nil {
			return types.HistoryEntry{}, fmt.Errorf("undo %s: checksumming restored %s: %w", entry.ID, path, err)
		}
		restored[path] = sum
	}

	var reversedRenames []types.RenamePair
	for i := len(entry.Renames) - 1; i >= 0; i-- {
		pair := entry.Renames[i]
		if err := apply.RenamePath(pair.To, pair.From); err != nil {
			return types.HistoryEntry{}, fmt.Errorf("undo %s: reversing rename %s -> %s: %w", entry.ID, pair.To, pair.From, err)
		}
		reversedRenames = append(reversedRenames, types.RenamePair{From: pair.To, To: pair.From})
	}

	revert := types.HistoryEntry{
		ID:            newID(),
		CreatedAt:     now(),
		Search:        entry.Replace,
		Replace:       entry.Search,
		Styles:        entry.Styles,
		Includes:      entry.Includes,
		Excludes:      entry.Excludes,
		AffectedFiles: restored,
		Renames:       reversedRenames,
		BackupsPath:   entry.BackupsPath,
		RevertOf:      entry.ID,
	}
	if err := h.AddEntry(stateDir, revert); err != nil {
		return types.HistoryEntry{}, err
	}
	return revert, nil
}
