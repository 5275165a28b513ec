package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabe565/splice-usage/cmd"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
)

const header = "<!-- Generated by internal/generate/docs. DO NOT EDIT. -->\n\n"

func main() {
	output, err := generate(os.Args[1:])
	if err != nil {
		panic(err)
	}
	fmt.Println("Wrote CLI reference to", output)
}

// generate writes the CLI reference into the directory named by --output.
func generate(args []string) (string, error) {
	fs := pflag.NewFlagSet("docs", pflag.ContinueOnError)
	output := fs.StringP("output", "o", "./docs", "Directory to write the CLI reference to")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		return "", err
	}

	root := cmd.New()
	prepend := func(string) string { return header }
	link := func(name string) string { return strings.TrimSuffix(name, filepath.Ext(name)) }
	if err := doc.GenMarkdownTreeCustom(root, *output, prepend, link); err != nil {
		return "", err
	}
	return *output, nil
}
