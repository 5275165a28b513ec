package markdown

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrMarkerNotFound  = errors.New("no fenced block contains marker")
	ErrAmbiguousMarker = errors.New("ambiguous marker")
	ErrDuplicateTarget = errors.New("program requested more than once")
	ErrFenceInHelpText = errors.New("help text contains a fence delimiter")
)

// Target is the help text to insert for one program.
type Target struct {
	Name  string
	Lines []string
}

// Patch matches every target to exactly one fence and replaces the fence
// bodies. Errors for all failing targets are joined in target order; on error
// no lines are returned.
func Patch(lines []string, targets []Target) ([]string, error) {
	fences, err := Scan(lines)
	if err != nil {
		return nil, err
	}

	matches := make([][]int, len(targets))
	claims := make(map[int][]int, len(targets))
	seen := make(map[string]int, len(targets))
	errs := make([]error, len(targets))

	for i, target := range targets {
		if target.Name == "" {
			errs[i] = fmt.Errorf("target %d: empty program name", i+1)
			continue
		}

		m := NewMatcher(target.Name)
		if first, ok := seen[m.Name()]; ok {
			errs[i] = fmt.Errorf("%w: %q (arguments %d and %d)", ErrDuplicateTarget, target.Name, first+1, i+1)
			continue
		}
		seen[m.Name()] = i

		for f, fence := range fences {
			if m.Match(fence.Body(lines)) {
				matches[i] = append(matches[i], f)
				claims[f] = append(claims[f], i)
			}
		}

		switch len(matches[i]) {
		case 0:
			errs[i] = fmt.Errorf("%w %q", ErrMarkerNotFound, m.Marker())
		case 1:
		default:
			starts := make([]string, 0, len(matches[i]))
			for _, f := range matches[i] {
				starts = append(starts, strconv.Itoa(fences[f].Start+1))
			}
			errs[i] = fmt.Errorf("%w: %q found in fences on lines %s", ErrAmbiguousMarker, m.Marker(), strings.Join(starts, ", "))
		}
	}

	replacements := make([]Replacement, 0, len(targets))
	for i, target := range targets {
		if errs[i] != nil || len(matches[i]) != 1 {
			continue
		}

		// A delimiter inside the new body would re-pair every fence after it.
		if n := slices.IndexFunc(target.Lines, IsDelimiter); n != -1 {
			errs[i] = fmt.Errorf("%w: %q line %d: %q", ErrFenceInHelpText, target.Name, n+1, target.Lines[n])
			continue
		}

		f := matches[i][0]
		if owners := claims[f]; len(owners) > 1 {
			names := make([]string, 0, len(owners)-1)
			for _, o := range owners {
				if o != i {
					names = append(names, strconv.Quote(targets[o].Name))
				}
			}
			errs[i] = fmt.Errorf("%w: fence on line %d for %q also matches %s", ErrAmbiguousMarker, fences[f].Start+1, target.Name, strings.Join(names, ", "))
			continue
		}

		replacements = append(replacements, Replacement{Fence: fences[f], Lines: target.Lines})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return Replace(lines, replacements)
}
