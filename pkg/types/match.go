package types

// RenameKind distinguishes a file rename from a directory rename.
type RenameKind string

const (
	RenameFile RenameKind = "file"
	RenameDir  RenameKind = "dir"
)

// MatchHunk is one located replacement site, either inside a file's
// content or (via Rename, not here) in a path component.
type MatchHunk struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	ByteStart int    `json:"start"`
	ByteEnd   int    `json:"end"`

	Variant string `json:"variant"`
	Content string `json:"content"`
	Replace string `json:"replace"`

	LineBefore string `json:"line_before"`
	LineAfter  string `json:"line_after"`

	CoercionApplied bool   `json:"coercion_applied,omitempty"`
	OriginalFile    string `json:"original_file,omitempty"`
	RenamedFile     string `json:"renamed_file,omitempty"`
	PatchHash       string `json:"patch_hash,omitempty"`
}

// Rename is one pending or applied path rename.
type Rename struct {
	Path    string     `json:"path"`
	NewPath string     `json:"new_path"`
	Kind    RenameKind `json:"kind"`
}

// Stats summarises a scan's yield.
type Stats struct {
	FilesScanned      int            `json:"files_scanned"`
	TotalMatches      int            `json:"total_matches"`
	MatchesByVariant  map[string]int `json:"matches_by_variant"`
	FilesWithMatches  int            `json:"files_with_matches"`
}

// Plan is the persisted, reviewable result of a scan.
type Plan struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Search    string `json:"search"`
	Replace   string `json:"replace"`
	Styles    []Style `json:"styles"`
	Includes  []string `json:"includes"`
	Excludes  []string `json:"excludes"`

	Matches []MatchHunk `json:"matches"`
	Paths   []Rename    `json:"paths"`

	Stats   Stats  `json:"stats"`
	Version string `json:"version"`

	CreatedDirectories []string `json:"created_directories,omitempty"`
}

// IsSearchOnly reports whether this plan was produced by the `search`
// subcommand (empty replace, dry-run only).
func (p *Plan) IsSearchOnly() bool {
	return p.Replace == ""
}
