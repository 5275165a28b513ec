// Package capture runs the external programs the patcher depends on: the
// commands whose help text is captured and the tools used to compare the
// original document with the modified copy.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrCaptureFailure = errors.New("help capture failed")

// Capturer returns the help text printed by argv.
type Capturer interface {
	Capture(ctx context.Context, argv []string) (string, error)
}

// Exec captures combined stdout and stderr of a subprocess.
type Exec struct {
	Timeout        time.Duration
	IgnoreExitCode bool
}

func (e Exec) Capture(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrCaptureFailure)
	}
	cmdline := strings.Join(argv, " ")

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	log.WithField("argv", argv).Debug("Running help command")
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %q timed out after %s", ErrCaptureFailure, cmdline, e.Timeout)
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || !e.IgnoreExitCode {
			return "", fmt.Errorf("%w: %q: %w", ErrCaptureFailure, cmdline, err)
		}
		log.WithFields(log.Fields{
			"command": cmdline,
			"code":    exitErr.ExitCode(),
		}).Warn("Help command exited non-zero")
	}

	if strings.TrimSpace(buf.String()) == "" {
		return "", fmt.Errorf("%w: %q produced no output", ErrCaptureFailure, cmdline)
	}
	return buf.String(), nil
}
