// Package preview renders a Plan for human or machine consumption:
// table, unified-diff, matches, summary, JSON, or no output at all. This
// is one of the external-collaborator surfaces spec.md §1 calls out
// (renderers consume Plan/MatchHunk/HistoryEntry/ApplyResult and nothing
// more), kept here because cmd/ needs a concrete implementation to call.
package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/renamify-go/renamify/pkg/types"
)

// Format selects which renderer Render dispatches to.
type Format string

const (
	FormatTable   Format = "table"
	FormatDiff    Format = "diff"
	FormatMatches Format = "matches"
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
	FormatNone    Format = "none"
)

// Render writes plan to w in the requested format.
func Render(w io.Writer, plan *types.Plan, format Format) error {
	switch format {
	case FormatTable:
		return renderTable(w, plan)
	case FormatDiff:
		return renderDiff(w, plan)
	case FormatMatches:
		return renderMatches(w, plan)
	case FormatSummary:
		return renderSummary(w, plan)
	case FormatJSON:
		return renderJSON(w, plan)
	case FormatNone:
		return nil
	default:
		return fmt.Errorf("preview: unknown format %q", format)
	}
}

// renderTable prints one aligned row per match: file, line:column, the
// matched text, and its replacement.
func renderTable(w io.Writer, plan *types.Plan) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLINE:COL\tMATCH\tREPLACE")
	for _, m := range plan.Matches {
		fmt.Fprintf(tw, "%s\t%d:%d\t%s\t%s\n", m.File, m.Line, m.Column, m.Content, m.Replace)
	}
	if len(plan.Paths) > 0 {
		fmt.Fprintln(tw, "\nPATH\tKIND\tNEW PATH")
		for _, p := range plan.Paths {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Path, p.Kind, p.NewPath)
		}
	}
	return tw.Flush()
}

// renderDiff prints a unified-diff-shaped preview: one hunk per match,
// addressed by file and line, mirroring the audit patches apply.BuildPatch
// writes to the backup tree.
func renderDiff(w io.Writer, plan *types.Plan) error {
	byFile := map[string][]types.MatchHunk{}
	var order []string
	for _, m := range plan.Matches {
		if _, ok := byFile[m.File]; !ok {
			order = append(order, m.File)
		}
		byFile[m.File] = append(byFile[m.File], m)
	}
	for _, file := range order {
		fmt.Fprintf(w, "--- a/%s\n+++ b/%s\n", file, file)
		for _, m := range byFile[file] {
			fmt.Fprintf(w, "@@ -%d,1 +%d,1 @@\n", m.Line, m.Line)
			fmt.Fprintf(w, "-%s\n+%s\n", m.LineBefore, m.LineAfter)
		}
	}
	for _, p := range plan.Paths {
		fmt.Fprintf(w, "rename %s => %s\n", p.Path, p.NewPath)
	}
	return nil
}

// renderMatches prints one line per match in "file:line:col: content ->
// replace" form, the shape a grep-alike's -n output takes.
func renderMatches(w io.Writer, plan *types.Plan) error {
	for _, m := range plan.Matches {
		fmt.Fprintf(w, "%s:%d:%d: %s -> %s\n", m.File, m.Line, m.Column, m.Content, m.Replace)
	}
	return nil
}

// renderSummary prints the plan's Stats plus a per-variant breakdown.
func renderSummary(w io.Writer, plan *types.Plan) error {
	fmt.Fprintf(w, "search:  %s\n", plan.Search)
	fmt.Fprintf(w, "replace: %s\n", plan.Replace)
	fmt.Fprintf(w, "files scanned:      %d\n", plan.Stats.FilesScanned)
	fmt.Fprintf(w, "files with matches: %d\n", plan.Stats.FilesWithMatches)
	fmt.Fprintf(w, "total matches:      %d\n", plan.Stats.TotalMatches)
	fmt.Fprintf(w, "renames:            %d\n", len(plan.Paths))
	if len(plan.Stats.MatchesByVariant) > 0 {
		fmt.Fprintln(w, "by variant:")
		tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
		for variant, count := range plan.Stats.MatchesByVariant {
			fmt.Fprintf(tw, "  %s\t%d\n", variant, count)
		}
		tw.Flush()
	}
	return nil
}

func renderJSON(w io.Writer, plan *types.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
