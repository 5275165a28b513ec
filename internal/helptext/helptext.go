// Package helptext turns captured help output into lines ready to be
// inserted into a fenced block.
package helptext

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

var (
	ErrNoUsageLineFound = errors.New(`no "usage:" line found in help text`)
	ErrEmpty            = errors.New("help text is empty")
)

type Options struct {
	// UsageOnly drops every line before the first one containing "usage:".
	UsageOnly bool
	// Indent is the number of spaces prepended to every line.
	Indent int
	// Wrap is the maximum line width before indenting. Zero disables wrapping.
	Wrap int
}

func (o Options) Validate() error {
	if o.Indent < 0 {
		return fmt.Errorf("indent must not be negative: %d", o.Indent)
	}
	if o.Wrap < 0 {
		return fmt.Errorf("wrap width must not be negative: %d", o.Wrap)
	}
	return nil
}

// Process splits raw help output into lines and applies opts.
func Process(raw string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lines := Lines(raw)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	if opts.UsageOnly {
		idx := UsageLine(lines)
		if idx == -1 {
			return nil, ErrNoUsageLineFound
		}
		lines = lines[idx:]
	}

	if opts.Wrap > 0 {
		lines = Wrap(lines, opts.Wrap)
	}

	return Indent(lines, opts.Indent), nil
}

// Lines normalizes line endings, strips trailing whitespace from every line
// and drops blank lines at the start and end.
func Lines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	split := strings.Split(raw, "\n")

	lines := make([]string, 0, len(split))
	for _, line := range split {
		line = strings.TrimRight(line, " \t\r\v\f")
		if len(lines) == 0 && line == "" {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) != 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// UsageLine returns the index of the first line containing "usage:" in any
// case, or -1.
func UsageLine(lines []string) int {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "usage:") {
			return i
		}
	}
	return -1
}

// Wrap word-wraps lines longer than width runes. Continuation lines keep the
// leading whitespace of the line they were split from.
func Wrap(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= width {
			out = append(out, line)
			continue
		}

		body := strings.TrimLeft(line, " \t")
		lead := line[:len(line)-len(body)]
		leadWidth := utf8.RuneCountInString(lead)
		if leadWidth >= width {
			out = append(out, line)
			continue
		}

		for _, part := range strings.Split(wordwrap.WrapString(body, uint(width-leadWidth)), "\n") {
			out = append(out, lead+part)
		}
	}
	return out
}

// Indent prefixes every line, including blank ones, with n spaces.
func Indent(lines []string, n int) []string {
	pad := strings.Repeat(" ", n)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, pad+line)
	}
	return out
}
