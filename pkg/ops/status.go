package ops

import (
	"github.com/renamify-go/renamify/pkg/history"
	"github.com/renamify-go/renamify/pkg/planfile"
	"github.com/renamify-go/renamify/pkg/types"
)

// StatusResult reports whether a plan is pending apply and how many
// history entries exist.
type StatusResult struct {
	HasPendingPlan bool
	PendingPlan    *types.Plan
	HistoryCount   int
}

// Status reports the pending-plan and history-count summary for root.
func Status(root string) (*StatusResult, error) {
	stateDir := StateDir(root)

	out := &StatusResult{}
	if p, err := planfile.Read(planfile.PlanPath(stateDir)); err == nil {
		out.HasPendingPlan = true
		out.PendingPlan = p
	}

	h, err := history.Load(stateDir)
	if err != nil {
		return nil, err
	}
	out.HistoryCount = len(h.Entries)
	return out, nil
}

// History returns up to limit of the most recent history entries
// (limit<=0 means no limit), newest first.
func History(root string, limit int) ([]types.HistoryEntry, error) {
	stateDir := StateDir(root)
	h, err := history.Load(stateDir)
	if err != nil {
		return nil, err
	}

	entries := make([]types.HistoryEntry, len(h.Entries))
	for i, e := range h.Entries {
		entries[len(h.Entries)-1-i] = e
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
