// Package program derives program names from run commands and builds the
// argv used to capture their help text.
package program

import (
	"errors"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

var ErrEmptyCommand = errors.New("empty run command")

// Interpreter describes the options of a launcher whose first non-option
// argument is the program being documented.
type Interpreter struct {
	// ValueOptions consume the following field as their value.
	ValueOptions []string
	// ScriptOptions take the program itself as their value.
	ScriptOptions []string
	// ModuleOption selects module mode, naming the module in the following field.
	ModuleOption string
}

var python = Interpreter{
	ValueOptions: []string{"-W", "-X", "-c", "--check-hash-based-pycs"},
	ModuleOption: moduleFlag,
}

var shell = Interpreter{
	ValueOptions: []string{"-c", "-o", "-O", "--rcfile", "--init-file"},
}

// Interpreters maps launcher names to their option rules.
var Interpreters = map[string]Interpreter{
	"bash": shell,
	"node": {
		ValueOptions: []string{
			"-r", "--require", "-e", "--eval", "-p", "--print", "-C", "--conditions",
			"--import", "--loader", "--input-type", "--max-old-space-size", "--stack-size",
		},
	},
	"perl": {ValueOptions: []string{"-e", "-E", "-I", "-x"}},
	"pwsh": {
		ValueOptions:  []string{"-ExecutionPolicy", "-WorkingDirectory", "-wd", "-Command", "-c", "-ConfigurationName"},
		ScriptOptions: []string{"-File", "-f"},
	},
	"py":      python,
	"python":  python,
	"python3": python,
	"ruby":    {ValueOptions: []string{"-e", "-I", "-r", "-C", "-E", "-F"}},
	"sh":      shell,
}

const moduleFlag = "-m"

// Config controls how a run command is launched.
type Config struct {
	// Interpreter, when set, is prepended to every run command.
	Interpreter string
	// Module runs each command as "Interpreter -m COMMAND".
	Module bool
	// HelpFlag is appended to every run command.
	HelpFlag string
}

// Name returns the program name used in the "usage: <name>" marker.
//
// Rules, applied in order:
//   - a leading interpreter and its option arguments are skipped;
//   - "-m MODULE" (or module mode) yields the last dotted component of MODULE;
//   - otherwise the final path component is used with its extension removed.
func Name(command string, module bool) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", ErrEmptyCommand
	}

	if interp, ok := lookupInterpreter(fields[0]); ok && len(fields) > 1 {
		fields, module = interp.skipOptions(fields[1:], module)
		if len(fields) == 0 {
			return "", ErrEmptyCommand
		}
	}

	token := fields[0]
	if module {
		if i := strings.LastIndexByte(token, '.'); i != -1 {
			token = token[i+1:]
		}
		if token == "" {
			return "", ErrEmptyCommand
		}
		return token, nil
	}

	base := baseName(token)
	if stem := strings.TrimSuffix(base, path.Ext(base)); stem != "" {
		base = stem
	}
	if base == "" || base == "." || base == "/" {
		return "", ErrEmptyCommand
	}
	return base, nil
}

// Invocation returns the argv that prints command's help text.
func (c Config) Invocation(command string) ([]string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	argv := make([]string, 0, len(fields)+3)
	if c.Interpreter != "" {
		argv = append(argv, c.Interpreter)
		if c.Module {
			argv = append(argv, moduleFlag)
		}
	}
	argv = append(argv, fields...)
	if c.HelpFlag != "" {
		argv = append(argv, c.HelpFlag)
	}
	return argv, nil
}

func lookupInterpreter(s string) (Interpreter, bool) {
	interp, ok := Interpreters[strings.TrimSuffix(baseName(s), ".exe")]
	return interp, ok
}

// skipOptions drops leading options and their values from fields. It returns
// the remaining fields and whether the module option was seen.
func (in Interpreter) skipOptions(fields []string, module bool) ([]string, bool) {
	for len(fields) != 0 && strings.HasPrefix(fields[0], "-") {
		opt := fields[0]
		fields = fields[1:]
		switch {
		case opt == "--", slices.Contains(in.ScriptOptions, opt):
			return fields, module
		case in.ModuleOption != "" && opt == in.ModuleOption:
			return fields, true
		case slices.Contains(in.ValueOptions, opt):
			if len(fields) != 0 {
				fields = fields[1:]
			}
		}
	}
	return fields, module
}

// baseName treats both slash and backslash as separators.
func baseName(s string) string {
	s = filepath.ToSlash(s)
	s = strings.ReplaceAll(s, `\`, "/")
	return path.Base(s)
}
