package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabe565/splice-usage/internal/helptext"
	"github.com/gabe565/splice-usage/internal/program"
	log "github.com/sirupsen/logrus"
)

const DefaultOutput = "{{ stem }}_MODIFIED_{{ timestamp }}{{ ext }}"

type Config struct {
	Document string
	Commands []string

	Indent         int
	UsageOnly      bool
	Wrap           int
	CompareCmd     string
	Diff           bool
	Interpreter    string
	Module         bool
	HelpFlag       string
	IgnoreExitCode bool
	Timeout        time.Duration
	Jobs           int
	Output         string

	configFile string
	logLevel   string
	LogLevel   log.Level
}

func New() *Config {
	return &Config{
		HelpFlag: "-h",
		Jobs:     1,
		Output:   DefaultOutput,
		logLevel: log.InfoLevel.String(),
		LogLevel: log.InfoLevel,
	}
}

// Load applies the config file, if any, and validates the result. Values from
// the file never override flags set on the command line.
func (c *Config) Load(changed func(name string) bool) error {
	if c.configFile != "" {
		if err := c.LoadFile(c.configFile, changed); err != nil {
			return err
		}
	}

	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return err
	}
	c.LogLevel = level

	if err := c.HelpText().Validate(); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1: %d", c.Jobs)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if c.Module && c.Interpreter == "" {
		return errors.New("module mode requires an interpreter")
	}
	return nil
}

func (c *Config) HelpText() helptext.Options {
	return helptext.Options{
		UsageOnly: c.UsageOnly,
		Indent:    c.Indent,
		Wrap:      c.Wrap,
	}
}

func (c *Config) Program() program.Config {
	return program.Config{
		Interpreter: c.Interpreter,
		Module:      c.Module,
		HelpFlag:    c.HelpFlag,
	}
}
