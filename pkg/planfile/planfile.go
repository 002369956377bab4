// Package planfile implements the canonical JSON serialization of a Plan
// (spec component I): a fixed field order (inherited from the struct
// definition in pkg/types), sorted matches, and a schema version, so that
// parsing a serialized Plan and re-serializing it is byte-identical.
package planfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/renamify-go/renamify/pkg/types"
)

// SchemaVersion is stamped by Marshal into every Plan that has no
// version yet. Unmarshal does not check it.
const SchemaVersion = "1.0.0"

// Marshal renders plan as canonical, indented JSON, sorting its matches
// by (file, line, column) in place first.
func Marshal(plan *types.Plan) ([]byte, error) {
	if plan.Version == "" {
		plan.Version = SchemaVersion
	}
	sort.SliceStable(plan.Matches, func(i, j int) bool {
		a, b := plan.Matches[i], plan.Matches[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("planfile: marshal: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal parses a serialized Plan.
func Unmarshal(data []byte) (*types.Plan, error) {
	var plan types.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptPlan, err)
	}
	return &plan, nil
}

// Write atomically writes plan to path (temp file in the same directory,
// fsync, rename), creating parent directories as needed.
func Write(path string, plan *types.Plan) error {
	data, err := Marshal(plan)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrIO, filepath.Dir(path), err)
	}
	return atomicWrite(path, data)
}

// Read loads and parses a Plan from path.
func Read(path string) (*types.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrIO, path, err)
	}
	return Unmarshal(data)
}

// atomicWrite writes data to a sibling temp file, fsyncs it, then renames
// it over path -- the same pattern the apply engine uses per-file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".planfile-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", types.ErrIO, dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", types.ErrIO, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: fsync %s: %v", types.ErrIO, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", types.ErrIO, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: renaming %s to %s: %v", types.ErrIO, tmpName, path, err)
	}
	return nil
}

// PlanPath returns the path for the most recent (unnamed) plan.
func PlanPath(stateDir string) string {
	return filepath.Join(stateDir, "plan.json")
}

// NamedPlanPath returns the path for a retained, named plan.
func NamedPlanPath(stateDir, id string) string {
	return filepath.Join(stateDir, "plans", id+".json")
}

// DeleteDefaultPlan removes the most-recent-plan file after a successful
// default-plan apply (named plans are retained).
func DeleteDefaultPlan(stateDir string) error {
	err := os.Remove(PlanPath(stateDir))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing %s: %v", types.ErrIO, PlanPath(stateDir), err)
	}
	return nil
}
