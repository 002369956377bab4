package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/ops"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the pending plan and history count",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := ops.Status(rootPath)
	if err != nil {
		return err
	}
	if st.HasPendingPlan {
		fmt.Printf("pending plan: %s (%q -> %q, %d matches, %d renames)\n",
			st.PendingPlan.ID, st.PendingPlan.Search, st.PendingPlan.Replace,
			st.PendingPlan.Stats.TotalMatches, len(st.PendingPlan.Paths))
	} else {
		fmt.Println("no pending plan")
	}
	fmt.Printf("history entries: %d\n", st.HistoryCount)
	return nil
}
