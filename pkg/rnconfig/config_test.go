package rnconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	body := `preview_format = "diff"
rename_files = false
unrestricted_level = 2
atomic = ["foobar", "CARGO_BIN"]
`
	require.NoError(t, os.WriteFile(Path(dir), []byte(body), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "diff", cfg.PreviewFormat)
	assert.False(t, cfg.RenameFiles)
	assert.Equal(t, 2, cfg.UnrestrictedLevel)
	assert.Equal(t, []string{"foobar", "CARGO_BIN"}, cfg.Atomic)
	// Fields absent from the file keep DefaultConfig's values.
	assert.True(t, cfg.RenameDirs)
	assert.True(t, cfg.UseColor)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("not = [valid"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadAcronyms_MissingFileReturnsDefaults(t *testing.T) {
	set, err := LoadAcronyms(t.TempDir())
	require.NoError(t, err)
	assert.True(t, set.Contains("HTTP"))
}

func TestLoadAcronyms_AddRemove(t *testing.T) {
	dir := t.TempDir()
	body := "add:\n  - OAuth\nremove:\n  - http\n"
	require.NoError(t, os.WriteFile(AcronymsPath(dir), []byte(body), 0o644))

	set, err := LoadAcronyms(dir)
	require.NoError(t, err)
	assert.True(t, set.Contains("oauth"))
	assert.False(t, set.Contains("HTTP"))
}

func TestLoadAcronyms_Replace(t *testing.T) {
	dir := t.TempDir()
	body := "replace:\n  - ZIP\n  - TAR\n"
	require.NoError(t, os.WriteFile(AcronymsPath(dir), []byte(body), 0o644))

	set, err := LoadAcronyms(dir)
	require.NoError(t, err)
	assert.True(t, set.Contains("zip"))
	assert.True(t, set.Contains("tar"))
	assert.False(t, set.Contains("HTTP"))
}

func TestPath_Joins(t *testing.T) {
	assert.Equal(t, filepath.Join("state", FileName), Path("state"))
	assert.Equal(t, filepath.Join("state", AcronymsFileName), AcronymsPath("state"))
}
