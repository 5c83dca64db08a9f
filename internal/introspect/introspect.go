// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package introspect builds language-neutral type descriptors, either from
// explicit definitions or from Go types via reflection.
package introspect

import (
	"errors"
	"fmt"

	"github.com/cryptoblk/corduroy/internal/translate"
)

var (
	// ErrMissingParticipants indicates a record type without a participants slot.
	ErrMissingParticipants = errors.New("missing participants metadata")

	// ErrEmptyEnum indicates an enum type that declares no values.
	ErrEmptyEnum = errors.New("enum declares no values")

	// ErrEmptyName indicates a type or field without a name.
	ErrEmptyName = errors.New("empty name")

	// ErrDuplicateType indicates two types with the same name in one call.
	ErrDuplicateType = errors.New("duplicate type name")
)

// Member is a data field of a record type before its type is resolved.
type Member struct {
	Name string
	Type string // declared type, possibly namespace-qualified
}

// BuildEnum creates an EnumDescriptor, keeping values in the given order.
func BuildEnum(name string, values []string) (translate.EnumDescriptor, error) {
	if name == "" {
		return translate.EnumDescriptor{}, fmt.Errorf("enum: %w", ErrEmptyName)
	}
	if len(values) == 0 {
		return translate.EnumDescriptor{}, fmt.Errorf("enum %q: %w", name, ErrEmptyEnum)
	}
	for _, v := range values {
		if v == "" {
			return translate.EnumDescriptor{}, fmt.Errorf("enum %q value: %w", name, ErrEmptyName)
		}
	}
	return translate.EnumDescriptor{
		Name:   name,
		Values: append([]string(nil), values...),
	}, nil
}

// BuildRecord creates a RecordDescriptor. A nil participants slice means the
// type has no participants slot at all and fails with ErrMissingParticipants;
// an empty non-nil slice is a slot that names no parties.
func BuildRecord(name string, members []Member, participants []string) (translate.RecordDescriptor, error) {
	if name == "" {
		return translate.RecordDescriptor{}, fmt.Errorf("record: %w", ErrEmptyName)
	}
	if participants == nil {
		return translate.RecordDescriptor{}, fmt.Errorf("record %q: %w", name, ErrMissingParticipants)
	}

	fields := make([]translate.FieldDescriptor, 0, len(members))
	for _, m := range members {
		if m.Name == "" {
			return translate.RecordDescriptor{}, fmt.Errorf("record %q field: %w", name, ErrEmptyName)
		}
		ref, err := translate.ParseTypeRef(m.Type)
		if err != nil {
			return translate.RecordDescriptor{}, fmt.Errorf("record %q field %q: %w", name, m.Name, err)
		}
		fields = append(fields, translate.FieldDescriptor{Name: m.Name, Type: ref})
	}

	return translate.RecordDescriptor{
		Name:         name,
		Fields:       fields,
		Participants: append([]string{}, participants...),
	}, nil
}

// Assemble collects descriptors into a Model, rejecting duplicate enum names
// and duplicate record names.
func Assemble(enums []translate.EnumDescriptor, records []translate.RecordDescriptor) (*translate.Model, error) {
	seen := make(map[string]bool, len(enums))
	for _, e := range enums {
		if seen[e.Name] {
			return nil, fmt.Errorf("enum %q: %w", e.Name, ErrDuplicateType)
		}
		seen[e.Name] = true
	}

	seen = make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.Name] {
			return nil, fmt.Errorf("record %q: %w", r.Name, ErrDuplicateType)
		}
		seen[r.Name] = true
	}

	return &translate.Model{Enums: enums, Records: records}, nil
}
