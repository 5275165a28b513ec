package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gabe565/splice-usage/internal/capture"
	"github.com/gabe565/splice-usage/internal/config"
	"github.com/gabe565/splice-usage/internal/helptext"
	"github.com/gabe565/splice-usage/internal/markdown"
	"github.com/gabe565/splice-usage/internal/program"
	"github.com/gabe565/splice-usage/internal/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoDocument = errors.New("no document given")
	ErrNoCommands = errors.New("no run commands given")
	ErrSameOutput = errors.New("output must differ from the document")
)

type runner struct {
	conf      *config.Config
	capturer  capture.Capturer
	comparers []capture.Comparer
	now       func() time.Time
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		r.conf.Document = args[0]
		if len(args) > 1 {
			r.conf.Commands = args[1:]
		}
	}

	if err := r.conf.Load(cmd.Flags().Changed); err != nil {
		return err
	}
	switch {
	case r.conf.Document == "":
		return ErrNoDocument
	case len(r.conf.Commands) == 0:
		return ErrNoCommands
	}
	cmd.SilenceUsage = true

	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(r.conf.LogLevel)

	docPath := r.conf.Document
	out, err := outputPath(r.conf.Output, docPath, r.now())
	if err != nil {
		return fmt.Errorf("invalid output %q: %w", r.conf.Output, err)
	}
	if util.SameFile(docPath, out) {
		return fmt.Errorf("%w: %s", ErrSameOutput, out)
	}
	if _, err := os.Lstat(out); err == nil {
		return fmt.Errorf("output %q: %w", out, fs.ErrExist)
	}

	log.WithField("path", docPath).Info("Reading document")
	src, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	doc := markdown.Parse(src)

	// Structural problems are reported before any command is launched.
	if _, err := markdown.Scan(doc.Lines); err != nil {
		return fmt.Errorf("%s: %w", docPath, err)
	}

	targets, err := r.captureAll(cmd.Context())
	if err != nil {
		return err
	}

	patched, err := doc.Patch(targets)
	if err != nil {
		return fmt.Errorf("%s: %w", docPath, err)
	}

	log.WithField("path", out).Info("Writing modified document")
	if err := writeNew(out, patched.Bytes()); err != nil {
		return err
	}

	return r.compare(cmd, docPath, out)
}

// captureAll captures and formats the help text of every run command. Results
// and errors are kept in command order regardless of how many jobs run.
func (r *runner) captureAll(ctx context.Context) ([]markdown.Target, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	capturer := r.capturer
	if capturer == nil {
		capturer = capture.Exec{
			Timeout:        r.conf.Timeout,
			IgnoreExitCode: r.conf.IgnoreExitCode,
		}
	}

	commands := r.conf.Commands
	targets := make([]markdown.Target, len(commands))
	errs := make([]error, len(commands))

	var group errgroup.Group
	group.SetLimit(r.conf.Jobs)
	for i, command := range commands {
		group.Go(func() error {
			targets[i], errs[i] = r.captureOne(ctx, capturer, command)
			return nil
		})
	}
	_ = group.Wait()

	return targets, errors.Join(errs...)
}

func (r *runner) captureOne(ctx context.Context, capturer capture.Capturer, command string) (markdown.Target, error) {
	name, err := program.Name(command, r.conf.Module)
	if err != nil {
		return markdown.Target{}, fmt.Errorf("%q: %w", command, err)
	}

	argv, err := r.conf.Program().Invocation(command)
	if err != nil {
		return markdown.Target{}, fmt.Errorf("%s: %w", name, err)
	}

	log.WithFields(log.Fields{
		"program": name,
		"command": command,
	}).Info("Capturing help text")
	raw, err := capturer.Capture(ctx, argv)
	if err != nil {
		return markdown.Target{}, fmt.Errorf("%s: %w", name, err)
	}

	lines, err := helptext.Process(raw, r.conf.HelpText())
	if err != nil {
		return markdown.Target{}, fmt.Errorf("%s: %w", name, err)
	}

	return markdown.Target{Name: name, Lines: lines}, nil
}

func (r *runner) compare(cmd *cobra.Command, original, modified string) error {
	var comparers capture.Multi
	if r.conf.Diff {
		comparers = append(comparers, capture.DiffComparer{W: cmd.OutOrStdout()})
	}
	if r.conf.CompareCmd != "" {
		comparers = append(comparers, capture.ExecComparer{
			Command: r.conf.CompareCmd,
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
		})
	}
	comparers = append(comparers, r.comparers...)
	if len(comparers) == 0 {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return comparers.Compare(ctx, original, modified)
}

// writeNew writes data to a file that must not already exist.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
