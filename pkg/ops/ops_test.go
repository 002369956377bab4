package ops

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamify-go/renamify/pkg/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestPlanApplyUndoRedo_FullRoundTrip drives the orchestrator layer the
// way cmd/ does: plan, apply, undo, redo, checking Status and History
// between each step (spec invariant 6 and scenario f).
func TestPlanApplyUndoRedo_FullRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "var old_name string\n")

	plan, err := Plan(ctx, PlanRequest{
		Root:    root,
		Search:  "old_name",
		Replace: "new_name",
		Persist: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, plan.Matches)

	status, err := Status(root)
	require.NoError(t, err)
	assert.True(t, status.HasPendingPlan)
	assert.Equal(t, 0, status.HistoryCount)

	applyResult, err := Apply(ctx, ApplyRequest{Root: root, CreateBackups: true})
	require.NoError(t, err)
	assert.Equal(t, 1, applyResult.Result.FilesChanged)

	got, err := os.ReadFile(filepath.Join(root, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "var new_name string\n", string(got))

	status, err = Status(root)
	require.NoError(t, err)
	assert.False(t, status.HasPendingPlan, "the default plan is deleted once applied")
	assert.Equal(t, 1, status.HistoryCount)

	revert, err := Undo(root, "latest")
	require.NoError(t, err)
	assert.Equal(t, applyResult.Entry.ID, revert.RevertOf)

	got, err = os.ReadFile(filepath.Join(root, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "var old_name string\n", string(got), "undo must restore the pre-apply content")

	status, err = Status(root)
	require.NoError(t, err)
	assert.Equal(t, 2, status.HistoryCount)

	redone, err := Redo(ctx, root, "latest")
	require.NoError(t, err)
	assert.Equal(t, applyResult.Entry.ID, redone.RedoOf)

	got, err = os.ReadFile(filepath.Join(root, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "var new_name string\n", string(got), "redo must re-apply the original change")

	entries, err := History(root, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// History returns newest first.
	assert.Equal(t, redone.ID, entries[0].ID)
}

func TestPlan_NoMatchesErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "nothing interesting here\n")

	_, err := Plan(context.Background(), PlanRequest{
		Root:    root,
		Search:  "old_name",
		Replace: "new_name",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNoMatches)
}

func TestPlan_LargeChangeRequiresFlag(t *testing.T) {
	root := t.TempDir()
	var content string
	for i := 0; i < DefaultLargeThreshold+1; i++ {
		content += "old_name\n"
	}
	writeFile(t, filepath.Join(root, "a.go"), content)

	_, err := Plan(context.Background(), PlanRequest{
		Root:    root,
		Search:  "old_name",
		Replace: "new_name",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLargeChange)

	plan, err := Plan(context.Background(), PlanRequest{
		Root:    root,
		Search:  "old_name",
		Replace: "new_name",
		Large:   true,
	})
	require.NoError(t, err)
	assert.Greater(t, plan.Stats.TotalMatches, DefaultLargeThreshold)
}

func TestApply_NoPendingPlanErrors(t *testing.T) {
	root := t.TempDir()
	_, err := Apply(context.Background(), ApplyRequest{Root: root})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrPlanMismatch)
}

func TestReplace_ScansAndAppliesInOneStep(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "foo bar foo\n")

	result, err := Replace(context.Background(), ReplaceRequest{
		Root:          root,
		Pattern:       "foo",
		Replace:       "baz",
		CreateBackups: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Result.FilesChanged)

	got, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "baz bar baz\n", string(got))

	status, err := Status(root)
	require.NoError(t, err)
	assert.Equal(t, 1, status.HistoryCount)
}

func TestReplace_NoMatchesErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "nothing to see\n")

	_, err := Replace(context.Background(), ReplaceRequest{
		Root:    root,
		Pattern: "foo",
		Replace: "baz",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNoMatches)
}
