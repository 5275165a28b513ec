package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	log "github.com/sirupsen/logrus"
)

// Comparer presents the difference between the original document and the
// modified copy.
type Comparer interface {
	Compare(ctx context.Context, original, modified string) error
}

// ExecComparer launches an external two-file compare tool as
// "Command ORIGINAL MODIFIED".
type ExecComparer struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer
}

func (c ExecComparer) Compare(ctx context.Context, original, modified string) error {
	fields := strings.Fields(c.Command)
	if len(fields) == 0 {
		return errors.New("empty compare command")
	}
	args := append(fields[1:], original, modified)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	log.WithField("argv", cmd.Args).Info("Running compare command")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		// diff style tools exit 1 when the files differ
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil
		}
		return fmt.Errorf("compare command %q failed: %w", c.Command, err)
	}
	return nil
}

// DiffComparer writes a unified diff of the two files to W.
type DiffComparer struct {
	W io.Writer
}

func (c DiffComparer) Compare(_ context.Context, original, modified string) error {
	before, err := os.ReadFile(original)
	if err != nil {
		return err
	}
	after, err := os.ReadFile(modified)
	if err != nil {
		return err
	}

	diff := Diff(original, modified, string(before), string(after))
	if diff == "" {
		log.Info("Document is unchanged")
		return nil
	}
	_, err = io.WriteString(c.W, diff)
	return err
}

// Diff returns the unified diff between before and after, or an empty string
// when they are equal.
func Diff(beforeName, afterName, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(beforeName), before, after)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(beforeName, afterName, before, edits))
}

// Multi runs every comparer in order, stopping at the first error.
type Multi []Comparer

func (m Multi) Compare(ctx context.Context, original, modified string) error {
	for _, c := range m {
		if err := c.Compare(ctx, original, modified); err != nil {
			return err
		}
	}
	return nil
}
