package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
	"github.com/renamify-go/renamify/pkg/preview"
)

var searchFlags scanFlags
var searchPreview previewFormat

var searchCmd = &cobra.Command{
	Use:   "search TERM [paths...]",
	Short: "Find occurrences of TERM without planning a replacement",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	addScanFlags(searchCmd, &searchFlags)
	addPreviewFlag(searchCmd, &searchPreview, "matches")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term, paths := args[0], args[1:]

	only, include, exclude, err := searchFlags.styles()
	if err != nil {
		return err
	}

	plan, err := ops.Plan(cmd.Context(), ops.PlanRequest{
		Root:                 rootPath,
		Roots:                resolveRoots(rootPath, paths),
		Search:               term,
		Replace:              "",
		Includes:             searchFlags.includes,
		Excludes:             searchFlags.excludes,
		UnrestrictedLevel:    searchFlags.unrestrictedLevel(),
		OnlyStyles:           only,
		IncludeStyles:        include,
		ExcludeStyles:        exclude,
		ExcludeMatchingLines: searchFlags.excludeMatchingLines,
		IgnoreAmbiguous:      searchFlags.ignoreAmbiguous,
		NoAcronyms:           searchFlags.noAcronyms,
		IncludeAcronyms:      searchFlags.includeAcronyms,
		ExcludeAcronyms:      searchFlags.excludeAcronyms,
		OnlyAcronyms:         searchFlags.onlyAcronyms,
		Large:                true, // search is dry-run only; never blocked by the large-change guard
		Persist:              false,
	})
	if err != nil {
		return err
	}

	return preview.Render(os.Stdout, plan, preview.Format(searchPreview.value))
}
