package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
	"github.com/renamify-go/renamify/pkg/scanner"
)

var (
	replaceIncludes   []string
	replaceExcludes   []string
	replaceRegex      bool
	replaceForce      bool
	replaceNoBackups  bool
	replaceCommit     bool
	replaceUnrestrict int
)

var replaceCmd = &cobra.Command{
	Use:   "replace PATTERN REPL [paths...]",
	Short: "Literal or regex replace, with no case-style expansion",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runReplace,
}

func init() {
	replaceCmd.Flags().StringArrayVar(&replaceIncludes, "include", nil, "glob(s) to additionally include")
	replaceCmd.Flags().StringArrayVar(&replaceExcludes, "exclude", nil, "glob(s) to exclude")
	replaceCmd.Flags().BoolVar(&replaceRegex, "regex", false, "treat PATTERN as a regular expression")
	replaceCmd.Flags().BoolVar(&replaceForce, "force", false, "apply even if a preflight context check fails")
	replaceCmd.Flags().BoolVar(&replaceNoBackups, "no-backups", false, "skip writing per-file backups")
	replaceCmd.Flags().BoolVar(&replaceCommit, "commit", false, "create a git commit for the applied changes")
	replaceCmd.Flags().CountVarP(&replaceUnrestrict, "unrestricted", "u", "ignore .gitignore (repeat: -uu, -uuu)")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	pattern, repl, paths := args[0], args[1], args[2:]

	result, err := ops.Replace(cmd.Context(), ops.ReplaceRequest{
		Root:              rootPath,
		Roots:             resolveRoots(rootPath, paths),
		Pattern:           pattern,
		Replace:           repl,
		IsRegex:           replaceRegex,
		Includes:          replaceIncludes,
		Excludes:          replaceExcludes,
		UnrestrictedLevel: scanner.UnrestrictedLevel(replaceUnrestrict),
		CreateBackups:     !replaceNoBackups,
		Force:             replaceForce,
		Commit:            replaceCommit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("replaced in %d file(s) [history %s]\n", result.Result.FilesChanged, result.Entry.ID)
	return nil
}
