// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package translate

// TypeResolver converts semantic type references to dialect type strings.
// Each translator implements this interface with its own mapping table.
type TypeResolver interface {
	// NamedType maps a short type name without arguments.
	NamedType(name string) string

	// GenericType renders a parameterized type whose single argument has
	// already been passed through NamedType.
	GenericType(name, arg string) string

	// EnrichField applies dialect-specific post-processing to a resolved field.
	// Called once per field after type resolution, before template execution.
	EnrichField(f *Field)
}

// ResolveType renders ref with the given resolver.
func ResolveType(ref TypeRef, r TypeResolver) string {
	if !ref.Generic() {
		return r.NamedType(ref.Name)
	}
	return r.GenericType(ref.Name, r.NamedType(ref.Arg))
}
