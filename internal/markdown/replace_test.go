package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	lines := []string{"a", "```", "old 1", "```", "b", "```", "old 2", "old 3", "```", "c"}
	original := append([]string(nil), lines...)

	out, err := Replace(lines, []Replacement{
		{Fence: Fence{Start: 5, End: 8}, Lines: []string{"new 2"}},
		{Fence: Fence{Start: 1, End: 3}, Lines: []string{"new 1a", "new 1b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "```", "new 1a", "new 1b", "```", "b", "```", "new 2", "```", "c"}, out)
	assert.Equal(t, original, lines)
}

func TestReplaceRoundTrip(t *testing.T) {
	lines := []string{"```", "x", "```", "```", "```"}
	help := []string{"  usage: foo", "", "  -h"}

	out, err := Replace(lines, []Replacement{
		{Fence: Fence{Start: 0, End: 2}, Lines: help},
		{Fence: Fence{Start: 3, End: 4}, Lines: help},
	})
	require.NoError(t, err)

	fences, err := Scan(out)
	require.NoError(t, err)
	require.Len(t, fences, 2)
	for _, f := range fences {
		assert.Equal(t, help, f.Body(out))
	}
}

func TestReplaceCRLF(t *testing.T) {
	lines := []string{"```\r", "old\r", "```\r"}
	out, err := Replace(lines, []Replacement{{Fence: Fence{Start: 0, End: 2}, Lines: []string{"a", "b\r"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"```\r", "a\r", "b\r", "```\r"}, out)
}

func TestReplaceInvalid(t *testing.T) {
	lines := []string{"```", "x", "```"}

	_, err := Replace(lines, []Replacement{
		{Fence: Fence{Start: 0, End: 2}},
		{Fence: Fence{Start: 0, End: 2}},
	})
	require.Error(t, err)

	_, err = Replace(lines, []Replacement{{Fence: Fence{Start: 1, End: 5}}})
	require.Error(t, err)
}
