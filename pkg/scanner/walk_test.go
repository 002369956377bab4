package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalk_HonoursGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.go"), "package main")
	writeFile(t, filepath.Join(dir, "build", "out.go"), "package build")
	writeFile(t, filepath.Join(dir, ".gitignore"), "build/\n")

	files, err := Walk(dir, LevelDefault, nil, nil)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		rels = append(rels, rel)
	}
	assert.Contains(t, rels, "keep.go")
	assert.NotContains(t, rels, filepath.Join("build", "out.go"))
}

func TestWalk_UnrestrictedIgnoresGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "build", "out.go"), "package build")
	writeFile(t, filepath.Join(dir, ".gitignore"), "build/\n")

	files, err := Walk(dir, LevelAll, nil, nil)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		rels = append(rels, rel)
	}
	assert.Contains(t, rels, filepath.Join("build", "out.go"))
}

func TestWalk_SkipsHiddenEntriesByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hidden", "secret.go"), "package hidden")
	writeFile(t, filepath.Join(dir, "visible.go"), "package visible")

	files, err := Walk(dir, LevelDefault, nil, nil)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		rels = append(rels, rel)
	}
	assert.Contains(t, rels, "visible.go")
	assert.NotContains(t, rels, filepath.Join(".hidden", "secret.go"))
}

func TestWalk_IncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package a")
	writeFile(t, filepath.Join(dir, "a_test.go"), "package a")
	writeFile(t, filepath.Join(dir, "b.md"), "# b")

	files, err := Walk(dir, LevelDefault, []string{"**/*.go"}, []string{"**/*_test.go"})
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		rels = append(rels, rel)
	}
	assert.Equal(t, []string{"a.go"}, rels)
}

func TestWalk_SkipsDotGitAlways(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref: refs/heads/main")
	writeFile(t, filepath.Join(dir, "a.go"), "package a")

	files, err := Walk(dir, LevelAll, nil, nil)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		rels = append(rels, rel)
	}
	assert.NotContains(t, rels, filepath.Join(".git", "HEAD"))
}

func TestIsBinary(t *testing.T) {
	assert.True(t, IsBinary([]byte("abc\x00def")))
	assert.False(t, IsBinary([]byte("abcdef")))
}
