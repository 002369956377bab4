// Package history implements the append-only operation log and the
// undo/redo restore-from-backup flow (spec component K).
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/renamify-go/renamify/pkg/apply"
	"github.com/renamify-go/renamify/pkg/types"
)

// FileName is the history log's basename inside the state directory.
const FileName = "history.json"

// History is the ordered list of HistoryEntry loaded from one JSON file.
type History struct {
	Entries []types.HistoryEntry
}

// Path returns the history file's path inside stateDir.
func Path(stateDir string) string {
	return filepath.Join(stateDir, FileName)
}

// Load reads the history log, returning an empty History if none exists
// yet.
func Load(stateDir string) (*History, error) {
	data, err := os.ReadFile(Path(stateDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("%w: reading history: %v", types.ErrIO, err)
	}
	var entries []types.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing history: %v", types.ErrCorruptPlan, err)
	}
	return &History{Entries: entries}, nil
}

// Save persists the history log atomically (write-temp-then-rename).
func (h *History) Save(stateDir string) error {
	data, err := json.MarshalIndent(h.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshalling history: %v", types.ErrIO, err)
	}
	data = append(data, '\n')

	dir := stateDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrIO, dir, err)
	}
	return apply.WriteFileAtomic(Path(stateDir), data, 0o644)
}

// AddEntry appends entry and persists the log.
func (h *History) AddEntry(stateDir string, entry types.HistoryEntry) error {
	h.Entries = append(h.Entries, entry)
	return h.Save(stateDir)
}

// Find looks up an entry by id.
func (h *History) Find(id string) (types.HistoryEntry, bool) {
	for _, e := range h.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return types.HistoryEntry{}, false
}

// IsReverted reports whether some later entry has RevertOf == id.
func (h *History) IsReverted(id string) bool {
	for _, e := range h.Entries {
		if e.RevertOf == id {
			return true
		}
	}
	return false
}

// RevertEntryFor returns the entry whose RevertOf == id, if any.
func (h *History) RevertEntryFor(id string) (types.HistoryEntry, bool) {
	for _, e := range h.Entries {
		if e.RevertOf == id {
			return e, true
		}
	}
	return types.HistoryEntry{}, false
}

// ResolveUndoTarget resolves an id-or-"latest" argument to the entry
// Undo should operate on: an explicit id must exist, not itself be a
// revert, and not already be reverted; "latest" picks the most recent
// entry meeting those conditions.
func (h *History) ResolveUndoTarget(idOrLatest string) (types.HistoryEntry, error) {
	if idOrLatest != "latest" {
		e, ok := h.Find(idOrLatest)
		if !ok {
			return types.HistoryEntry{}, fmt.Errorf("%w: %s", types.ErrHistoryNotFound, idOrLatest)
		}
		if e.IsRevert() {
			return types.HistoryEntry{}, fmt.Errorf("%w: %s is itself a revert", types.ErrAlreadyIsRevert, idOrLatest)
		}
		if h.IsReverted(e.ID) {
			return types.HistoryEntry{}, fmt.Errorf("%w: %s", types.ErrAlreadyReverted, idOrLatest)
		}
		return e, nil
	}
	for i := len(h.Entries) - 1; i >= 0; i-- {
		e := h.Entries[i]
		if e.IsRevert() || h.IsReverted(e.ID) {
			continue
		}
		return e, nil
	}
	return types.HistoryEntry{}, fmt.Errorf("%w: no entry available to undo", types.ErrHistoryNotFound)
}

// ResolveRedoTarget resolves an id-or-"latest" argument to the entry
// Redo should re-apply: an explicit id must have a corresponding revert
// entry; "latest" picks the most-recently-reverted original entry.
func (h *History) ResolveRedoTarget(idOrLatest string) (types.HistoryEntry, error) {
	if idOrLatest != "latest" {
		e, ok := h.Find(idOrLatest)
		if !ok {
			return types.HistoryEntry{}, fmt.Errorf("%w: %s", types.ErrHistoryNotFound, idOrLatest)
		}
		if !h.IsReverted(e.ID) {
			return types.HistoryEntry{}, fmt.Errorf("%w: %s", types.ErrNotReverted, idOrLatest)
		}
		return e, nil
	}
	type candidate struct {
		original types.HistoryEntry
		revertAt int
	}
	var best *candidate
	for i, e := range h.Entries {
		if !e.IsRevert() {
			continue
		}
		orig, ok := h.Find(e.RevertOf)
		if !ok {
			continue
		}
		if best == nil || i > best.revertAt {
			best = &candidate{original: orig, revertAt: i}
		}
	}
	if best == nil {
		return types.HistoryEntry{}, fmt.Errorf("%w: no entry available to redo", types.ErrHistoryNotFound)
	}
	return best.original, nil
}

// newID mints a fresh history entry id.
func newID() string {
	return uuid.NewString()
}

// now formats the current time as the RFC3339 timestamp stored on every
// entry.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// sortedKeys returns m's keys sorted, used wherever affected-file
// iteration order must be deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
