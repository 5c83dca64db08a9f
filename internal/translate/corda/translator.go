// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package corda

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/cryptoblk/corduroy/internal/translate"
)

//go:embed corda.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(tmplFS, "corda.go.tmpl"))

// Translator translates type descriptors to Corda contract-state declarations.
type Translator struct{}

// FileExtension returns the file extension for Kotlin files.
func (t *Translator) FileExtension() string {
	return ".kt"
}

// Translate renders every enum as a serializable enum class and every record
// as a data class implementing ContractState.
func (t *Translator) Translate(m *translate.Model) ([]byte, error) {
	data := translate.Prepare(m, &resolver{})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "corda.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
