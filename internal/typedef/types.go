// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package typedef reads and writes type-definition documents: declarative
// YAML or JSON descriptions of the enums and records to translate.
package typedef

// CurrentVersion is the current version of the document format.
const CurrentVersion = 1

// Document is the root of a type-definition document.
type Document struct {
	Version int      `yaml:"version" json:"version"`
	Enums   []Enum   `yaml:"enums,omitempty" json:"enums,omitempty"`
	Records []Record `yaml:"records,omitempty" json:"records,omitempty"`
}

// Enum declares an enumerated type and its values in order.
type Enum struct {
	Name   string   `yaml:"name" json:"name"`
	Values []string `yaml:"values" json:"values"`
}

// Record declares a structured record type.
// A nil Participants pointer means the key is absent from the document.
type Record struct {
	Name         string    `yaml:"name" json:"name"`
	Fields       []Field   `yaml:"fields,omitempty" json:"fields,omitempty"`
	Participants *[]string `yaml:"participants,omitempty" json:"participants,omitempty"`
}

// Field declares a record field. Type may be namespace-qualified and may
// carry one generic argument, e.g. "kotlin.collections.List<kotlin.String>".
type Field struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Owners returns a pointer suitable for Record.Participants.
func Owners(participants ...string) *[]string {
	p := append([]string{}, participants...)
	return &p
}
