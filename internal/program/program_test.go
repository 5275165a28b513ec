package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		command string
		module  bool
		want    string
	}{
		{"foo", false, "foo"},
		{"./bin/foo", false, "foo"},
		{"/usr/local/bin/foo --verbose", false, "foo"},
		{"sausage.py", false, "sausage"},
		{`C:\tools\foo.exe`, false, "foo"},
		{"python3 scripts/bar.py", false, "bar"},
		{"/usr/bin/python3 -u -B baz.py", false, "baz"},
		{"python -m pkg.tool", false, "tool"},
		{"pkg.sub.tool", true, "tool"},
		{"tool", true, "tool"},
		{"node cli.js", false, "cli"},
		{"python3 -W ignore tool.py", false, "tool"},
		{"python3 -X dev -Wignore tool.py", false, "tool"},
		{"python3 -X dev -m pkg.tool", false, "tool"},
		{"node --max-old-space-size 4096 cli.js", false, "cli"},
		{"node --max-old-space-size=4096 -r ts-node/register cli.ts", false, "cli"},
		{"bash -o pipefail ./run.sh", false, "run"},
		{"pwsh -NoProfile -File ./build.ps1", false, "build"},
		{"ruby -I lib -- bin/tool.rb", false, "tool"},
		{"python", false, "python"},
		{".hidden", false, ".hidden"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			got, err := Name(tt.command, tt.module)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameEmpty(t *testing.T) {
	_, err := Name("   ", false)
	require.ErrorIs(t, err, ErrEmptyCommand)
	_, err = Name("pkg.", true)
	require.ErrorIs(t, err, ErrEmptyCommand)

	for _, command := range []string{"python -m", "python3 -W ignore", "node -r"} {
		_, err = Name(command, false)
		require.ErrorIs(t, err, ErrEmptyCommand, command)
	}
}

func TestInvocation(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		command string
		want    []string
	}{
		{"plain", Config{HelpFlag: "-h"}, "foo", []string{"foo", "-h"}},
		{"arguments", Config{HelpFlag: "--help"}, "foo sub", []string{"foo", "sub", "--help"}},
		{"interpreter", Config{Interpreter: "python3", HelpFlag: "-h"}, "foo.py", []string{"python3", "foo.py", "-h"}},
		{"module", Config{Interpreter: "python3", Module: true, HelpFlag: "-h"}, "pkg.foo", []string{"python3", "-m", "pkg.foo", "-h"}},
		{"no help flag", Config{}, "foo", []string{"foo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conf.Invocation(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvocationEmpty(t *testing.T) {
	_, err := Config{}.Invocation("")
	require.ErrorIs(t, err, ErrEmptyCommand)
}
