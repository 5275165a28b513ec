// Package markdown locates fenced code blocks in a Markdown document and
// rewrites their bodies without touching any other line.
package markdown

import "strings"

// Document is a Markdown file split into lines. Lines keep any trailing
// carriage return, so Bytes reproduces the parsed input exactly.
type Document struct {
	Lines        []string
	FinalNewline bool
}

func Parse(src []byte) Document {
	s := string(src)
	if s == "" {
		return Document{}
	}

	var doc Document
	if strings.HasSuffix(s, "\n") {
		doc.FinalNewline = true
		s = s[:len(s)-1]
	}
	doc.Lines = strings.Split(s, "\n")
	return doc
}

func (d Document) Bytes() []byte {
	var buf strings.Builder
	for i, line := range d.Lines {
		if i != 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	if d.FinalNewline {
		buf.WriteByte('\n')
	}
	return []byte(buf.String())
}

// Patch returns a copy of the document with each target's help text spliced
// into its fence. The receiver is left untouched.
func (d Document) Patch(targets []Target) (Document, error) {
	lines, err := Patch(d.Lines, targets)
	if err != nil {
		return Document{}, err
	}
	return Document{Lines: lines, FinalNewline: d.FinalNewline}, nil
}
