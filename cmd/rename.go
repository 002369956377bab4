package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
	"github.com/renamify-go/renamify/pkg/preview"
)

var renameFlags scanFlags
var renamePreview previewFormat
var (
	renameYes    bool
	renameForce  bool
	renameCommit bool
)

var renameCmd = &cobra.Command{
	Use:   "rename OLD NEW [paths...]",
	Short: "Plan and apply a rename in one step",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRename,
}

func init() {
	addScanFlags(renameCmd, &renameFlags)
	addPreviewFlag(renameCmd, &renamePreview, "diff")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "apply without an interactive confirmation prompt")
	renameCmd.Flags().BoolVar(&renameForce, "force", false, "apply even if the working tree has drifted from the plan")
	renameCmd.Flags().BoolVar(&renameCommit, "commit", false, "create a git commit for the applied changes")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	search, replace, paths := args[0], args[1], args[2:]

	only, include, exclude, err := renameFlags.styles()
	if err != nil {
		return err
	}

	plan, err := ops.Plan(cmd.Context(), ops.PlanRequest{
		Root:                 rootPath,
		Roots:                resolveRoots(rootPath, paths),
		Search:               search,
		Replace:              replace,
		Includes:             renameFlags.includes,
		Excludes:             renameFlags.excludes,
		UnrestrictedLevel:    renameFlags.unrestrictedLevel(),
		RenameFiles:          true,
		RenameDirs:           true,
		RenameRoot:           renameFlags.renameRoot,
		OnlyStyles:           only,
		IncludeStyles:        include,
		ExcludeStyles:        exclude,
		ExcludeMatchingLines: renameFlags.excludeMatchingLines,
		IgnoreAmbiguous:      renameFlags.ignoreAmbiguous,
		CoerceAuto:           !renameFlags.coerceOff,
		Atomic:               renameFlags.atomic,
		AtomicSearch:         renameFlags.atomicSearch,
		AtomicReplace:        renameFlags.atomicReplace,
		NoAcronyms:           renameFlags.noAcronyms,
		IncludeAcronyms:      renameFlags.includeAcronyms,
		ExcludeAcronyms:      renameFlags.excludeAcronyms,
		OnlyAcronyms:         renameFlags.onlyAcronyms,
		Large:                renameFlags.large,
		Persist:              true,
	})
	if err != nil {
		return err
	}

	if err := preview.Render(os.Stdout, plan, preview.Format(renamePreview.value)); err != nil {
		return err
	}

	if !renameYes && !confirm(fmt.Sprintf("apply %d match(es) and %d rename(s)?", len(plan.Matches), len(plan.Paths))) {
		fmt.Println("aborted")
		return nil
	}

	result, err := ops.Apply(cmd.Context(), ops.ApplyRequest{
		Root:          rootPath,
		PlanID:        "latest",
		Force:         renameForce,
		CreateBackups: true,
		SkipSymlinks:  true,
		Commit:        renameCommit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("applied %d file(s), %d rename(s) [history %s]\n",
		result.Result.FilesChanged, result.Result.Renames, result.Entry.ID)
	return nil
}

// confirm prompts the user on stdin for a yes/no answer, defaulting to
// no on anything but an explicit "y"/"yes".
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
