// Package cmd implements the renamify CLI commands using Cobra.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootPath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "renamify",
	Short: "Code-aware bulk rename across file contents and paths",
	Long: `renamify rewrites every occurrence of a SEARCH term to a REPLACE
term across a source tree -- inside file contents and in file/directory
names -- while preserving each occurrence's case style (snake_case,
PascalCase, SCREAMING_SNAKE, ...).

The tool is plan-based: "plan" scans the tree and writes a reviewable
plan; "apply" applies it with backups; "undo"/"redo" restore or replay
the change.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", ".", "working copy root")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func setupLogging() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
