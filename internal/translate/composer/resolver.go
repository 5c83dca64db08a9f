// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package composer provides the Hyperledger Composer asset schema dialect.
package composer

import (
	"strings"

	"github.com/cryptoblk/corduroy/internal/translate"
)

const (
	stringType = "String"

	// primitiveMarker precedes fields holding a primitive or enum value.
	primitiveMarker = "o"
	// referenceMarker precedes fields linking to another asset or participant.
	referenceMarker = "-->"
)

// renames maps short type names to Composer primitives. Names not listed
// pass through unchanged.
var renames = map[string]string{
	"Int":           "Integer",
	"Float":         "Double",
	"Instant":       "DateTime",
	"LocalDate":     "DateTime",
	"LocalDateTime": "DateTime",
}

var primitives = map[string]bool{
	stringType: true,
	"Double":   true,
	"Integer":  true,
	"Long":     true,
	"DateTime": true,
	"Boolean":  true,
}

type resolver struct {
	enums map[string]bool
}

func (r *resolver) NamedType(name string) string {
	if mapped, ok := renames[name]; ok {
		return mapped
	}
	return name
}

func (r *resolver) GenericType(_, arg string) string {
	return arg + "[]"
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Tag = marker(f.Type, r.enums)
}

// marker classifies a rendered Composer type. Array suffixes are ignored;
// primitives and enums declared in the same call get primitiveMarker,
// everything else referenceMarker.
func marker(composerType string, enums map[string]bool) string {
	base := strings.TrimRight(composerType, "[]")
	if primitives[base] || enums[base] {
		return primitiveMarker
	}
	return referenceMarker
}
