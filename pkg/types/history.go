package types

// HistoryEntry records one applied (or reverted/redone) operation.
type HistoryEntry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`

	Search  string   `json:"search"`
	Replace string   `json:"replace"`
	Styles  []Style  `json:"styles"`
	Includes []string `json:"includes"`
	Excludes []string `json:"excludes"`

	// AffectedFiles maps a working-tree path to a content checksum: for
	// an applied entry, the checksum *before* the change; for a revert
	// entry, the checksum of the restored content.
	AffectedFiles map[string]string `json:"affected_files"`

	Renames []RenamePair `json:"renames"`

	BackupsPath string `json:"backups_path"`

	RevertOf string `json:"revert_of,omitempty"`
	RedoOf   string `json:"redo_of,omitempty"`
}

// RenamePair is a (from, to) pair recorded in history, kept distinct from
// Rename/RenameKind since history doesn't track file-vs-dir.
type RenamePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IsRevert reports whether this entry is itself the undo of another entry.
func (h HistoryEntry) IsRevert() bool {
	return h.RevertOf != ""
}

// IsRedo reports whether this entry is itself the redo of another entry.
func (h HistoryEntry) IsRedo() bool {
	return h.RedoOf != ""
}

// ApplyOptions configures the apply engine (component J).
type ApplyOptions struct {
	BackupDir     string
	CreateBackups bool
	Force         bool
	SkipSymlinks  bool
	LogFile       string
	Commit        bool
}

// ApplyResult summarises what Apply actually did, consumed by external
// renderers and by History.AddEntry.
type ApplyResult struct {
	FilesChanged  int
	Renames       int
	AffectedFiles map[string]string
	RenamePairs   []RenamePair
	Committed     bool
}
