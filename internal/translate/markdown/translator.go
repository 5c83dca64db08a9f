// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/cryptoblk/corduroy/internal/translate"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatParticipants": formatParticipants,
}

var tmpl = template.Must(template.New("markdown.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.go.tmpl"))

// Translator translates type descriptors to markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate renders the model as markdown documentation.
func (t *Translator) Translate(m *translate.Model) ([]byte, error) {
	data := translate.Prepare(m, &resolver{})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// formatParticipants renders participant expressions as inline code.
func formatParticipants(participants []string) string {
	if len(participants) == 0 {
		return "none"
	}
	parts := make([]string, len(participants))
	for i, p := range participants {
		parts[i] = "`" + p + "`"
	}
	return strings.Join(parts, ", ")
}
