package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past operations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum entries to print (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := ops.History(rootPath, historyLimit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kind := "apply"
		switch {
		case e.IsRevert():
			kind = "undo of " + e.RevertOf
		case e.IsRedo():
			kind = "redo of " + e.RedoOf
		}
		fmt.Printf("%s  %-24s %q -> %q  (%d files, %d renames)  %s\n",
			e.ID, e.CreatedAt, e.Search, e.Replace, len(e.AffectedFiles), len(e.Renames), kind)
	}
	return nil
}
