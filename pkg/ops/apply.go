package ops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renamify-go/renamify/pkg/apply"
	"github.com/renamify-go/renamify/pkg/history"
	"github.com/renamify-go/renamify/pkg/planfile"
	"github.com/renamify-go/renamify/pkg/types"
)

// ApplyRequest configures the apply orchestrator.
type ApplyRequest struct {
	Root          string
	PlanID        string // "" or "latest" means the default plan.json
	Force         bool
	CreateBackups bool
	SkipSymlinks  bool
	Commit        bool
}

// ApplyResult bundles what Apply did plus the history entry it wrote.
type ApplyResult struct {
	Result *types.ApplyResult
	Entry  types.HistoryEntry
}

// Apply loads the plan named by req (or the default plan.json) and
// applies it, journalling a HistoryEntry and deleting the default plan
// file on success.
func Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error) {
	stateDir := StateDir(req.Root)

	var out *ApplyResult
	err := withLock(stateDir, func() error {
		plan, isDefault, err := loadPlan(stateDir, req.PlanID)
		if err != nil {
			return err
		}

		applyOpts := types.ApplyOptions{
			BackupDir:     BackupsDir(stateDir),
			CreateBackups: req.CreateBackups,
			Force:         req.Force,
			SkipSymlinks:  req.SkipSymlinks,
			Commit:        req.Commit,
		}

		result, err := apply.Apply(ctx, plan, applyOpts)
		if err != nil {
			return err
		}

		entry := types.HistoryEntry{
			ID:            uuid.NewString(),
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
			Search:        plan.Search,
			Replace:       plan.Replace,
			Styles:        plan.Styles,
			Includes:      plan.Includes,
			Excludes:      plan.Excludes,
			AffectedFiles: result.AffectedFiles,
			Renames:       result.RenamePairs,
			BackupsPath:   BackupsDir(stateDir) + "/" + plan.ID,
		}

		h, err := history.Load(stateDir)
		if err != nil {
			return err
		}
		if err := h.AddEntry(stateDir, entry); err != nil {
			return err
		}

		if isDefault {
			if err := planfile.DeleteDefaultPlan(stateDir); err != nil {
				return err
			}
		}

		out = &ApplyResult{Result: result, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// loadPlan resolves a plan id (or "latest"/"" meaning the default
// plan.json) to a loaded Plan, reporting whether it came from the
// default (overwritten-each-time) slot as opposed to a retained named
// plan.
func loadPlan(stateDir, id string) (*types.Plan, bool, error) {
	if id == "" || id == "latest" {
		p, err := planfile.Read(planfile.PlanPath(stateDir))
		if err != nil {
			return nil, false, fmt.Errorf("%w: no pending plan (run `plan` first): %v", types.ErrPlanMismatch, err)
		}
		return p, true, nil
	}
	p, err := planfile.Read(planfile.NamedPlanPath(stateDir, id))
	if err != nil {
		return nil, false, fmt.Errorf("%w: plan %s: %v", types.ErrPlanMismatch, id, err)
	}
	return p, false, nil
}
