package planfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamify-go/renamify/pkg/types"
)

func samplePlan() *types.Plan {
	return &types.Plan{
		ID:      "plan-1",
		Search:  "old_name",
		Replace: "new_name",
		Styles:  []types.Style{types.StyleSnake, types.StyleCamel},
		Matches: []types.MatchHunk{
			{File: "a.go", Line: 1, Column: 0, Variant: "old_name", Replace: "new_name"},
		},
		Stats: types.Stats{FilesScanned: 1, TotalMatches: 1},
	}
}

func TestMarshal_StampsSchemaVersion(t *testing.T) {
	p := samplePlan()
	require.Empty(t, p.Version)

	data, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, p.Version)
	assert.Contains(t, string(data), `"version": "1.0.0"`)
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	p := samplePlan()
	data, err := Marshal(p)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Search, got.Search)
	assert.Equal(t, p.Replace, got.Replace)
	assert.Equal(t, p.Matches, got.Matches)

	data2, err := Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, data, data2, "re-serializing a round-tripped plan must be byte-identical")
}

func TestUnmarshal_CorruptData(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrCorruptPlan)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "plan.json")
	p := samplePlan()

	require.NoError(t, Write(path, p))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, p.Search, got.Search)
	assert.Equal(t, p.Replace, got.Replace)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrIO)
}

func TestDeleteDefaultPlan(t *testing.T) {
	dir := t.TempDir()
	path := PlanPath(dir)
	require.NoError(t, Write(path, samplePlan()))

	require.NoError(t, DeleteDefaultPlan(dir))
	_, err := Read(path)
	require.Error(t, err)

	// Deleting an already-absent plan is not an error.
	assert.NoError(t, DeleteDefaultPlan(dir))
}

func TestPlanPath_NamedPlanPath(t *testing.T) {
	assert.Equal(t, filepath.Join("state", "plan.json"), PlanPath("state"))
	assert.Equal(t, filepath.Join("state", "plans", "abc123.json"), NamedPlanPath("state", "abc123"))
}
