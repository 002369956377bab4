package ops

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/renamify-go/renamify/pkg/apply"
	"github.com/renamify-go/renamify/pkg/history"
	"github.com/renamify-go/renamify/pkg/scanner"
	"github.com/renamify-go/renamify/pkg/types"
)

// ReplaceRequest configures the `replace` subcommand: a literal or regex
// pattern/replacement with none of the case-style machinery, applied in
// one step (scan, then immediately apply) but still backed up and
// journalled like any other operation.
type ReplaceRequest struct {
	Root    string
	Roots   []string
	Pattern string
	Replace string
	IsRegex bool

	Includes []string
	Excludes []string

	UnrestrictedLevel scanner.UnrestrictedLevel

	CreateBackups bool
	Force         bool
	Commit        bool
}

// Replace runs ScanLiteral and applies the result in a single locked
// operation.
func Replace(ctx context.Context, req ReplaceRequest) (*ApplyResult, error) {
	stateDir := StateDir(req.Root)

	roots := req.Roots
	if len(roots) == 0 {
		roots = []string{req.Root}
	}

	var out *ApplyResult
	err := withLock(stateDir, func() error {
		plan, err := scanner.ScanLiteral(ctx, scanner.LiteralOptions{
			Roots:             roots,
			Pattern:           req.Pattern,
			Replace:           req.Replace,
			IsRegex:           req.IsRegex,
			Includes:          req.Includes,
			Excludes:          req.Excludes,
			UnrestrictedLevel: req.UnrestrictedLevel,
		})
		if err != nil {
			return err
		}
		if len(plan.Matches) == 0 {
			return notFoundError(req.Pattern)
		}

		result, err := apply.Apply(ctx, plan, types.ApplyOptions{
			BackupDir:     BackupsDir(stateDir),
			CreateBackups: req.CreateBackups,
			Force:         req.Force,
			Commit:        req.Commit,
		})
		if err != nil {
			return err
		}

		entry := types.HistoryEntry{
			ID:            uuid.NewString(),
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
			Search:        plan.Search,
			Replace:       plan.Replace,
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

		out = &ApplyResult{Result: result, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
