package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"text/template"
	"time"

	"github.com/gabe565/splice-usage/internal/util"
)

const timestampLayout = "20060102_150405"

func funcMap(doc string, now time.Time) template.FuncMap {
	return template.FuncMap{
		"stem":      func() string { return util.Stem(doc) },
		"ext":       func() string { return filepath.Ext(doc) },
		"base":      func() string { return filepath.Base(doc) },
		"timestamp": func() string { return now.Format(timestampLayout) },
		"date":      now.Format,
	}
}

// outputPath renders the output template for doc. Relative results are
// resolved against the directory holding doc.
func outputPath(text, doc string, now time.Time) (string, error) {
	tmpl, err := template.New("output").Funcs(funcMap(doc, now)).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", err
	}
	if buf.Len() == 0 {
		return "", errors.New("output template rendered an empty path")
	}
	return util.ResolveRelative(doc, buf.String()), nil
}
