package config

import (
	"fmt"
	"time"

	"github.com/gabe565/splice-usage/internal/util"
)

// File is the YAML config file layout. Unset keys keep the flag value.
type File struct {
	Document       string   `yaml:"document"`
	Commands       []string `yaml:"commands"`
	Indent         *int     `yaml:"indent"`
	UsageOnly      *bool    `yaml:"usage-only"`
	Wrap           *int     `yaml:"wrap"`
	CompareCmd     *string  `yaml:"compare-cmd"`
	Diff           *bool    `yaml:"diff"`
	Interpreter    *string  `yaml:"interpreter"`
	Module         *bool    `yaml:"module"`
	HelpFlag       *string  `yaml:"help-flag"`
	IgnoreExitCode *bool    `yaml:"ignore-exit-code"`
	Timeout        *string  `yaml:"timeout"`
	Jobs           *int     `yaml:"jobs"`
	Output         *string  `yaml:"output"`
	LogLevel       *string  `yaml:"log-level"`
}

func (c *Config) LoadFile(path string, changed func(name string) bool) error {
	if !util.IsYAMLPath(path) {
		return fmt.Errorf("config file %q must have a .yaml or .yml extension", path)
	}

	var f File
	if err := util.DecodeFile(path, &f); err != nil {
		return fmt.Errorf("failed to load config %q: %w", path, err)
	}

	if changed == nil {
		changed = func(string) bool { return false }
	}

	if c.Document == "" {
		c.Document = f.Document
	}
	if len(c.Commands) == 0 {
		c.Commands = f.Commands
	}

	set(&c.Indent, f.Indent, changed(FlagIndent))
	set(&c.UsageOnly, f.UsageOnly, changed(FlagUsageOnly))
	set(&c.Wrap, f.Wrap, changed(FlagWrap))
	set(&c.CompareCmd, f.CompareCmd, changed(FlagCompareCmd))
	set(&c.Diff, f.Diff, changed(FlagDiff))
	set(&c.Interpreter, f.Interpreter, changed(FlagInterpreter))
	set(&c.Module, f.Module, changed(FlagModule))
	set(&c.HelpFlag, f.HelpFlag, changed(FlagHelpFlag))
	set(&c.IgnoreExitCode, f.IgnoreExitCode, changed(FlagIgnoreExitCode))
	set(&c.Jobs, f.Jobs, changed(FlagJobs))
	set(&c.Output, f.Output, changed(FlagOutput))
	set(&c.logLevel, f.LogLevel, changed(FlagLogLevel))

	if f.Timeout != nil && !changed(FlagTimeout) {
		timeout, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in %q: %w", path, err)
		}
		c.Timeout = timeout
	}
	return nil
}

func set[T any](dst *T, src *T, changed bool) {
	if src != nil && !changed {
		*dst = *src
	}
}
