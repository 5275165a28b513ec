package util

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeFile decodes the first YAML document in path into v. Unknown keys are
// rejected. An empty file leaves v untouched.
func DecodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
