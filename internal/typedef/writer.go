// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package typedef

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// Writer encodes a type-definition document to a file.
type Writer struct {
	write     func(path string, v any) error
	extension string
}

var (
	// JSONWriter writes documents as JSON.
	JSONWriter = Writer{writeJSON, ".json"}
	// YAMLWriter writes documents as YAML.
	YAMLWriter = Writer{writeYaml, ".yaml"}
)

// WriterFor returns the writer for a format name ("yaml" or "json").
func WriterFor(format string) (Writer, error) {
	switch format {
	case "yaml", "yml":
		return YAMLWriter, nil
	case "json":
		return JSONWriter, nil
	default:
		return Writer{}, ErrUnsupportedFormat
	}
}

// Extension returns the file extension produced by the writer.
func (wr Writer) Extension() string {
	return wr.extension
}

// Write encodes doc to path.
func (wr Writer) Write(doc *Document, path string) error {
	return wr.write(path, doc)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // path is from config
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYaml(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // path is from config
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(v)
}
