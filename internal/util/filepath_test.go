package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsYAMLPath(t *testing.T) {
	assert.True(t, IsYAMLPath("a.yaml"))
	assert.True(t, IsYAMLPath("dir/a.yml"))
	assert.False(t, IsYAMLPath("a.json"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "README", Stem("docs/README.md"))
	assert.Equal(t, "notes", Stem("notes"))
}

func TestResolveRelative(t *testing.T) {
	assert.Equal(t, filepath.Join("docs", "out.md"), ResolveRelative(filepath.Join("docs", "README.md"), "out.md"))
	abs := filepath.Join(t.TempDir(), "out.md")
	assert.Equal(t, abs, ResolveRelative("README.md", abs))
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	assert.True(t, SameFile(path, filepath.Join(dir, ".", "README.md")))
	assert.False(t, SameFile(path, filepath.Join(dir, "other.md")))
	assert.True(t, SameFile(filepath.Join(dir, "a.md"), filepath.Join(dir, "sub", "..", "a.md")))
}
