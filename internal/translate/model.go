// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package translate

// Model is the language-neutral description of every type passed to one
// generation call.
type Model struct {
	Enums   []EnumDescriptor   // in input order
	Records []RecordDescriptor // in input order
}

// EnumDescriptor describes an enumerated type.
type EnumDescriptor struct {
	Name   string
	Values []string // constant names in declaration order
}

// RecordDescriptor describes a structured record type.
type RecordDescriptor struct {
	Name         string
	Fields       []FieldDescriptor // data fields in declaration order
	Participants []string          // owning-party field expressions, verbatim
}

// FieldDescriptor is a single data field of a record.
type FieldDescriptor struct {
	Name string
	Type TypeRef
}

// EnumNames returns the set of enum names declared in the model.
func (m *Model) EnumNames() map[string]bool {
	names := make(map[string]bool, len(m.Enums))
	for _, e := range m.Enums {
		names[e.Name] = true
	}
	return names
}

// RenderData is the complete input passed to a dialect template.
type RenderData struct {
	Enums []EnumDef
	Types []TypeDef
	Extra map[string]any // translator-specific template data
}

// EnumDef is an enum ready for template execution.
type EnumDef struct {
	Name   string
	Values []string
}

// TypeDef is a record ready for template execution.
type TypeDef struct {
	Name         string
	Fields       []Field
	Participants []string
}

// Field represents a single resolved field within a type definition.
type Field struct {
	Name string // field name as declared
	Type string // fully resolved target type string
	Tag  string // dialect-specific annotation, e.g. the asset marker "o" or "-->"
}
