// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package composer

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/cryptoblk/corduroy/internal/translate"
)

//go:embed composer.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "composer.go.tmpl"))

// Translator translates type descriptors to Hyperledger Composer model declarations.
type Translator struct{}

// FileExtension returns the file extension for Composer model files.
func (t *Translator) FileExtension() string {
	return ".cto"
}

// Translate renders the fixed Party participant, then every enum, then every
// record as an asset identified by a synthetic id field.
func (t *Translator) Translate(m *translate.Model) ([]byte, error) {
	data := translate.Prepare(m, &resolver{enums: m.EnumNames()})
	data.Extra["IdentityType"] = stringType

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "composer.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
