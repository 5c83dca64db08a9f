// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package translate provides the shared type model and rendering utilities
// used by every schema dialect.
package translate

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDialect is returned when no translator is registered under a name.
var ErrUnknownDialect = errors.New("unknown dialect")

// Translator defines the interface all dialect translators must implement.
type Translator interface {
	// Translate renders the model in the target dialect.
	Translate(m *Model) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".kt", ".cto")
	FileExtension() string
}

// Register maps dialect names to their translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
	return t, nil
}

// Available returns all registered dialect names in sorted order.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate renders m with the translator registered under dialect.
func (r Register) Generate(dialect string, m *Model) ([]byte, error) {
	t, err := r.Get(dialect)
	if err != nil {
		return nil, err
	}
	out, err := t.Translate(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dialect, err)
	}
	return out, nil
}
