// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package typedef

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDocument indicates a document that does not match the format.
	ErrInvalidDocument = errors.New("invalid type-definition document")

	// ErrUnsupportedFormat indicates a file extension with no parser.
	ErrUnsupportedFormat = errors.New("format not supported")
)

//go:embed document.schema.json
var documentSchemaJSON []byte

var documentSchema = mustResolve(documentSchemaJSON)

func mustResolve(data []byte) *jsonschema.Resolved {
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		panic(fmt.Sprintf("typedef: invalid document schema: %v", err))
	}
	rs, err := s.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("typedef: unresolvable document schema: %v", err))
	}
	return rs
}

// Parser decodes a type-definition document from an io.Reader.
type Parser struct {
	unmarshal func([]byte, any) error
}

var (
	// JSON parses documents from JSON.
	JSON = Parser{json.Unmarshal}
	// YAML parses documents from YAML.
	YAML = Parser{yaml.Unmarshal}
)

// ParserFor picks a parser from the file extension of path.
func ParserFor(path string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return Parser{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes a document from r and validates it against the document
// schema before decoding it into a Document.
func (p Parser) Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	var raw any
	if err := p.unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	instance, err := normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := documentSchema.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err := p.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// normalize converts decoded YAML or JSON into plain JSON values so the
// validator sees the same shapes for both formats.
func normalize(raw any) (any, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
