package capture

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, before, after string) (string, string) {
	dir := t.TempDir()
	original := filepath.Join(dir, "README.md")
	modified := filepath.Join(dir, "README_MODIFIED.md")
	require.NoError(t, os.WriteFile(original, []byte(before), 0o644))
	require.NoError(t, os.WriteFile(modified, []byte(after), 0o644))
	return original, modified
}

func TestDiff(t *testing.T) {
	diff := Diff("a.md", "b.md", "```\nusage: foo\n```\n", "```\nusage: foo [-x]\n```\n")
	assert.Contains(t, diff, "--- a.md")
	assert.Contains(t, diff, "+++ b.md")
	assert.Contains(t, diff, "-usage: foo\n")
	assert.Contains(t, diff, "+usage: foo [-x]\n")

	assert.Empty(t, Diff("a.md", "b.md", "same\n", "same\n"))
}

func TestDiffComparer(t *testing.T) {
	original, modified := writeFiles(t, "old\n", "new\n")

	var buf bytes.Buffer
	require.NoError(t, DiffComparer{W: &buf}.Compare(context.Background(), original, modified))
	assert.Contains(t, buf.String(), "-old")
	assert.Contains(t, buf.String(), "+new")
}

func TestDiffComparerMissingFile(t *testing.T) {
	err := DiffComparer{W: &bytes.Buffer{}}.Compare(context.Background(), "missing.md", "missing2.md")
	require.Error(t, err)
}

func TestExecComparer(t *testing.T) {
	original, modified := writeFiles(t, "same\n", "same\n")

	var stdout bytes.Buffer
	c := ExecComparer{Command: "cat", Stdout: &stdout}
	require.NoError(t, c.Compare(context.Background(), original, modified))
	assert.Equal(t, "same\nsame\n", stdout.String())

	err := ExecComparer{Command: "no-such-compare-tool"}.Compare(context.Background(), original, modified)
	require.Error(t, err)
}

type recordingComparer struct {
	calls *[]string
	name  string
}

func (r recordingComparer) Compare(_ context.Context, _, _ string) error {
	*r.calls = append(*r.calls, r.name)
	return nil
}

func TestMulti(t *testing.T) {
	var calls []string
	m := Multi{recordingComparer{&calls, "a"}, recordingComparer{&calls, "b"}}
	require.NoError(t, m.Compare(context.Background(), "x", "y"))
	assert.Equal(t, []string{"a", "b"}, calls)
}
