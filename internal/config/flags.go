package config

import "github.com/spf13/pflag"

const (
	FlagIndent         = "indent"
	FlagUsageOnly      = "usage-only"
	FlagWrap           = "wrap"
	FlagCompareCmd     = "compare-cmd"
	FlagDiff           = "diff"
	FlagInterpreter    = "interpreter"
	FlagModule         = "module"
	FlagHelpFlag       = "help-flag"
	FlagIgnoreExitCode = "ignore-exit-code"
	FlagTimeout        = "timeout"
	FlagJobs           = "jobs"
	FlagOutput         = "output"
	FlagConfig         = "config"
	FlagLogLevel       = "log-level"
)

func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Indent, FlagIndent, "i", c.Indent, "Number of spaces to indent each inserted line")
	fs.BoolVarP(&c.UsageOnly, FlagUsageOnly, "u", c.UsageOnly, `Drop help text before the first "usage:" line`)
	fs.IntVar(&c.Wrap, FlagWrap, c.Wrap, "Word-wrap inserted text at this width (0 disables)")
	fs.StringVarP(&c.CompareCmd, FlagCompareCmd, "c", c.CompareCmd, "Compare tool run with the original and modified documents")
	fs.BoolVar(&c.Diff, FlagDiff, c.Diff, "Print a unified diff of the changes")
	fs.StringVar(&c.Interpreter, FlagInterpreter, c.Interpreter, "Interpreter used to launch each run command")
	fs.BoolVarP(&c.Module, FlagModule, "m", c.Module, "Run commands are module names passed to the interpreter with -m")
	fs.StringVar(&c.HelpFlag, FlagHelpFlag, c.HelpFlag, "Argument appended to each run command to print its help")
	fs.BoolVar(&c.IgnoreExitCode, FlagIgnoreExitCode, c.IgnoreExitCode, "Accept help output from commands that exit non-zero")
	fs.DurationVar(&c.Timeout, FlagTimeout, c.Timeout, "Timeout for each help command (0 disables)")
	fs.IntVarP(&c.Jobs, FlagJobs, "j", c.Jobs, "Number of help commands to run at once")
	fs.StringVarP(&c.Output, FlagOutput, "o", c.Output, "Output path template, relative to the document directory")
	fs.StringVar(&c.configFile, FlagConfig, c.configFile, "YAML config file")
	fs.StringVar(&c.logLevel, FlagLogLevel, c.logLevel, "Log level (trace, debug, info, warn, error)")
}
