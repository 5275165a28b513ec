package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: foo\n---\nname: bar\n"), 0o644))

	var v struct {
		Name string `yaml:"name"`
	}
	require.NoError(t, DecodeFile(path, &v))
	assert.Equal(t, "foo", v.Name)

	var strict struct{}
	require.Error(t, DecodeFile(path, &strict))
}
