package cmd

import (
	"time"

	"github.com/gabe565/splice-usage/internal/capture"
	"github.com/gabe565/splice-usage/internal/config"
	"github.com/spf13/cobra"
)

const long = `Capture the help/usage message of one or more programs and insert it into
a copy of a Markdown document.

The document must contain a fenced code block (lines of triple backticks
before and after) with "usage: <program_name>" in it for every program whose
help text is inserted. The block body is replaced with the captured text and
the result is written to a new file. The original document is not modified.

Each run command is launched with the help flag (-h by default) appended.`

type Option func(*runner)

// WithCapturer replaces the subprocess based help capture.
func WithCapturer(c capture.Capturer) Option {
	return func(r *runner) {
		r.capturer = c
	}
}

// WithComparer adds a comparer that runs after the output is written.
func WithComparer(c capture.Comparer) Option {
	return func(r *runner) {
		r.comparers = append(r.comparers, c)
	}
}

// WithClock sets the time used to render the output path.
func WithClock(now func() time.Time) Option {
	return func(r *runner) {
		r.now = now
	}
}

func New(opts ...Option) *cobra.Command {
	r := &runner{
		conf: config.New(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	cmd := &cobra.Command{
		Use:   "splice-usage [flags] document [run_cmd...]",
		Short: "Insert program help text into Markdown fenced code blocks",
		Long:  long,
		Example: `  splice-usage README.md ./bin/foo ./bin/bar
  splice-usage --indent 4 --usage-only --diff README.md foo
  splice-usage --interpreter python3 --module README.md pkg.tool
  splice-usage --config splice-usage.yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: r.run,

		DisableAutoGenTag: true,
	}
	r.conf.RegisterFlags(cmd.Flags())
	return cmd
}
