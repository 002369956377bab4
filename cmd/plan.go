package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
	"github.com/renamify-go/renamify/pkg/preview"
)

var planFlags scanFlags
var planPreview previewFormat
var planDryRun bool

var planCmd = &cobra.Command{
	Use:   "plan OLD NEW [paths...]",
	Short: "Scan the tree and write a reviewable plan",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPlan,
}

func init() {
	addScanFlags(planCmd, &planFlags)
	addPreviewFlag(planCmd, &planPreview, "table")
	planCmd.Flags().BoolVar(&planDryRun, "dry-run", false, "compute the plan but do not write plan.json")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	search, replace, paths := args[0], args[1], args[2:]

	only, include, exclude, err := planFlags.styles()
	if err != nil {
		return err
	}

	req := ops.PlanRequest{
		Root:                 rootPath,
		Roots:                resolveRoots(rootPath, paths),
		Search:               search,
		Replace:              replace,
		Includes:             planFlags.includes,
		Excludes:             planFlags.excludes,
		UnrestrictedLevel:    planFlags.unrestrictedLevel(),
		RenameFiles:          planFlags.renameFiles,
		RenameDirs:           planFlags.renameDirs,
		RenameRoot:           planFlags.renameRoot,
		OnlyStyles:           only,
		IncludeStyles:        include,
		ExcludeStyles:        exclude,
		ExcludeMatchingLines: planFlags.excludeMatchingLines,
		IgnoreAmbiguous:      planFlags.ignoreAmbiguous,
		CoerceAuto:           !planFlags.coerceOff,
		Atomic:               planFlags.atomic,
		AtomicSearch:         planFlags.atomicSearch,
		AtomicReplace:        planFlags.atomicReplace,
		NoAcronyms:           planFlags.noAcronyms,
		IncludeAcronyms:      planFlags.includeAcronyms,
		ExcludeAcronyms:      planFlags.excludeAcronyms,
		OnlyAcronyms:         planFlags.onlyAcronyms,
		Large:                planFlags.large,
		Persist:              !planDryRun,
	}

	plan, err := ops.Plan(cmd.Context(), req)
	if err != nil {
		return err
	}

	return preview.Render(os.Stdout, plan, preview.Format(planPreview.value))
}

// resolveRoots turns the positional path arguments into scan roots,
// falling back to root itself when none were given.
func resolveRoots(root string, paths []string) []string {
	if len(paths) == 0 {
		return []string{root}
	}
	return paths
}
