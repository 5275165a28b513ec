package markdown

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

const fenceDelimiter = "```"

var ErrMalformedDocument = errors.New("malformed document")

// Fence is a fenced code block. Start and End are the indexes of the
// delimiter lines; the body is everything in between.
type Fence struct {
	Start int
	End   int
}

func (f Fence) Body(lines []string) []string {
	return lines[f.Start+1 : f.End]
}

// IsDelimiter reports whether line opens or closes a fence: triple backticks,
// optionally indented and followed by an info string without backticks.
func IsDelimiter(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, fenceDelimiter) {
		return false
	}
	return !strings.Contains(strings.TrimLeft(s, "`"), "`")
}

// Fences lazily yields every fence in lines, in document order. A fence left
// open at the end of the document yields ErrMalformedDocument.
func Fences(lines []string) iter.Seq2[Fence, error] {
	return func(yield func(Fence, error) bool) {
		open := -1
		for i, line := range lines {
			if !IsDelimiter(line) {
				continue
			}
			if open == -1 {
				open = i
				continue
			}
			if !yield(Fence{Start: open, End: i}, nil) {
				return
			}
			open = -1
		}
		if open != -1 {
			yield(Fence{}, fmt.Errorf("%w: fence opened on line %d is never closed", ErrMalformedDocument, open+1))
		}
	}
}

func Scan(lines []string) ([]Fence, error) {
	var fences []Fence
	for fence, err := range Fences(lines) {
		if err != nil {
			return nil, err
		}
		fences = append(fences, fence)
	}
	return fences, nil
}
