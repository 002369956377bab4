package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
)

var redoCmd = &cobra.Command{
	Use:   "redo <ID|latest>",
	Short: "Replay a previously reverted operation",
	Args:  cobra.ExactArgs(1),
	RunE:  runRedo,
}

func init() {
	rootCmd.AddCommand(redoCmd)
}

func runRedo(cmd *cobra.Command, args []string) error {
	redone, err := ops.Redo(cmd.Context(), rootPath, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("redone %s: changed %d file(s), %d rename(s) [new entry %s]\n",
		args[0], len(redone.AffectedFiles), len(redone.Renames), redone.ID)
	return nil
}
