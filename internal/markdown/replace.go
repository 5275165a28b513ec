package markdown

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type Replacement struct {
	Fence Fence
	Lines []string
}

// Replace builds a new line slice where the body of every replaced fence is
// swapped for its replacement lines. Replacements are applied in fence order
// regardless of the order given.
func Replace(lines []string, replacements []Replacement) ([]string, error) {
	sorted := slices.Clone(replacements)
	slices.SortFunc(sorted, func(a, b Replacement) int {
		return cmp.Compare(a.Fence.Start, b.Fence.Start)
	})

	size := len(lines)
	prevEnd := -1
	for _, r := range sorted {
		f := r.Fence
		if f.Start < 0 || f.End >= len(lines) || f.End <= f.Start {
			return nil, fmt.Errorf("fence %d-%d is out of range", f.Start+1, f.End+1)
		}
		if f.Start <= prevEnd {
			return nil, fmt.Errorf("fence on line %d is replaced more than once", f.Start+1)
		}
		prevEnd = f.End
		size += len(r.Lines) - (f.End - f.Start - 1)
	}

	out := make([]string, 0, size)
	next := 0
	for _, r := range sorted {
		f := r.Fence
		out = append(out, lines[next:f.Start+1]...)
		crlf := strings.HasSuffix(lines[f.Start], "\r")
		for _, line := range r.Lines {
			if crlf && !strings.HasSuffix(line, "\r") {
				line += "\r"
			}
			out = append(out, line)
		}
		next = f.End
	}
	out = append(out, lines[next:]...)
	return out, nil
}
