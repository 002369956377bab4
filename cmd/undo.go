package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
)

var undoCmd = &cobra.Command{
	Use:   "undo <ID|latest>",
	Short: "Revert a previously applied operation",
	Args:  cobra.ExactArgs(1),
	RunE:  runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	revert, err := ops.Undo(rootPath, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("reverted %s: restored %d file(s), reversed %d rename(s) [new entry %s]\n",
		args[0], len(revert.AffectedFiles), len(revert.Renames), revert.ID)
	return nil
}
