package markdown

import (
	"regexp"
	"strings"
)

const markerPrefix = "usage:"

// Matcher finds the "usage: <name>" marker for a single program.
type Matcher struct {
	name string
	re   *regexp.Regexp
}

func NewMatcher(name string) *Matcher {
	name = strings.ToLower(name)
	return &Matcher{
		name: name,
		re:   regexp.MustCompile(regexp.QuoteMeta(markerPrefix) + `\s*` + regexp.QuoteMeta(name) + `(?:$|[^\p{L}\p{N}_-])`),
	}
}

func (m *Matcher) Name() string {
	return m.name
}

func (m *Matcher) Marker() string {
	return markerPrefix + " " + m.name
}

func (m *Matcher) MatchLine(line string) bool {
	return m.re.MatchString(strings.ToLower(line))
}

// Match reports whether any line of body carries the marker.
func (m *Matcher) Match(body []string) bool {
	for _, line := range body {
		if m.MatchLine(line) {
			return true
		}
	}
	return false
}
