package ops

import (
	"context"
	"fmt"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/planfile"
	"github.com/renamify-go/renamify/pkg/rnconfig"
	"github.com/renamify-go/renamify/pkg/scanner"
	"github.com/renamify-go/renamify/pkg/types"
)

// PlanRequest is every flag spec.md §6 lists for the plan/search/rename
// orchestrators, collected in one place.
type PlanRequest struct {
	Root    string
	Roots   []string // additional path arguments narrowing the walk
	Search  string
	Replace string // empty for the `search` subcommand (dry-run only)

	Includes []string
	Excludes []string

	UnrestrictedLevel scanner.UnrestrictedLevel

	RenameFiles bool
	RenameDirs  bool
	RenameRoot  bool

	OnlyStyles    []types.Style
	IncludeStyles []types.Style
	ExcludeStyles []types.Style

	ExcludeMatchingLines string
	IgnoreAmbiguous      bool
	CoerceAuto           bool

	Atomic        bool
	AtomicSearch  bool
	AtomicReplace bool

	NoAcronyms      bool
	IncludeAcronyms []string
	ExcludeAcronyms []string
	OnlyAcronyms    []string

	Large bool
	// Persist controls whether the resulting Plan is written to
	// plan.json. `search` dry-runs pass false.
	Persist bool
}

// Plan runs a full scan under the single-writer lock and, unless
// req.Persist is false, writes the result to <state_dir>/plan.json.
func Plan(ctx context.Context, req PlanRequest) (*types.Plan, error) {
	stateDir := StateDir(req.Root)

	var plan *types.Plan
	err := withLock(stateDir, func() error {
		cfg, err := rnconfig.Load(stateDir)
		if err != nil {
			return err
		}
		acronyms, err := resolveAcronyms(stateDir, req)
		if err != nil {
			return err
		}

		roots := req.Roots
		if len(roots) == 0 {
			roots = []string{req.Root}
		}

		p, err := scanner.Scan(ctx, scanner.Options{
			Roots:                roots,
			Search:               req.Search,
			Replace:              req.Replace,
			Styles:               resolveStyles(req.OnlyStyles, req.IncludeStyles, req.ExcludeStyles),
			AtomicIdentifiers:    resolveAtomicIdentifiers(req.Search, req.Replace, req.Atomic, req.AtomicSearch, req.AtomicReplace, cfg.Atomic),
			Plurals:              true,
			Acronyms:             acronyms,
			Includes:             req.Includes,
			Excludes:             req.Excludes,
			UnrestrictedLevel:    req.UnrestrictedLevel,
			RenameFiles:          req.RenameFiles || cfg.RenameFiles,
			RenameDirs:           req.RenameDirs || cfg.RenameDirs,
			RenameRoot:           req.RenameRoot,
			IgnoreAmbiguous:      req.IgnoreAmbiguous,
			CoerceAuto:           req.CoerceAuto,
			ExcludeMatchingLines: req.ExcludeMatchingLines,
		})
		if err != nil {
			return err
		}

		if len(p.Matches) == 0 && len(p.Paths) == 0 && req.Replace != "" {
			return fmt.Errorf("%w: no occurrences of %q found", types.ErrNoMatches, req.Search)
		}
		if p.Stats.TotalMatches > DefaultLargeThreshold && !req.Large {
			return fmt.Errorf("%w: %d matches exceeds %d (pass --large to proceed)",
				types.ErrLargeChange, p.Stats.TotalMatches, DefaultLargeThreshold)
		}

		if req.Persist {
			if err := planfile.Write(planfile.PlanPath(stateDir), p); err != nil {
				return err
			}
		}
		plan = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// resolveAcronyms layers the CLI's acronym flags on top of
// acronyms.yaml's overrides: --no-acronyms empties the set entirely,
// --only-acronyms replaces it outright, then --include/--exclude-acronyms
// adjust whatever set resulted.
func resolveAcronyms(stateDir string, req PlanRequest) (*acronym.Set, error) {
	if req.NoAcronyms {
		return acronym.New(), nil
	}

	set, err := rnconfig.LoadAcronyms(stateDir)
	if err != nil {
		return nil, err
	}
	if len(req.OnlyAcronyms) > 0 {
		set = acronym.New()
		for _, a := range req.OnlyAcronyms {
			set.Add(a)
		}
	}
	for _, a := range req.IncludeAcronyms {
		set.Add(a)
	}
	for _, a := range req.ExcludeAcronyms {
		set.Remove(a)
	}
	return set, nil
}
