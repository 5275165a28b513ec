package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	output, err := generate([]string{"-o", dir})
	require.NoError(t, err)
	assert.Equal(t, dir, output)

	b, err := os.ReadFile(filepath.Join(dir, "splice-usage.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), header))
	assert.Contains(t, string(b), "--usage-only")
}

func TestGenerateUnknownFlag(t *testing.T) {
	_, err := generate([]string{"--nope"})
	require.Error(t, err)
}
