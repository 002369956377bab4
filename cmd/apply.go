package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
)

var (
	applyForce        bool
	applyNoBackups    bool
	applySkipSymlinks bool
	applyCommit       bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [ID|latest]",
	Short: "Apply a pending plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyForce, "force", false, "apply even if the working tree has drifted from the plan")
	applyCmd.Flags().BoolVar(&applyNoBackups, "no-backups", false, "skip writing per-file backups (undo becomes impossible)")
	applyCmd.Flags().BoolVar(&applySkipSymlinks, "skip-symlinks", true, "never follow or rewrite symlinks")
	applyCmd.Flags().BoolVar(&applyCommit, "commit", false, "create a git commit for the applied changes")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	planID := ""
	if len(args) > 0 {
		planID = args[0]
	}

	result, err := ops.Apply(cmd.Context(), ops.ApplyRequest{
		Root:          rootPath,
		PlanID:        planID,
		Force:         applyForce,
		CreateBackups: !applyNoBackups,
		SkipSymlinks:  applySkipSymlinks,
		Commit:        applyCommit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("applied %d file(s), %d rename(s) [history %s]\n",
		result.Result.FilesChanged, result.Result.Renames, result.Entry.ID)
	if result.Result.Committed {
		fmt.Println("committed changes")
	}
	return nil
}
