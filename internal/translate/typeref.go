// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package translate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedGenericDepth indicates a generic argument that is itself parameterized.
	ErrUnsupportedGenericDepth = errors.New("unsupported generic nesting depth")

	// ErrUnsupportedTypeArguments indicates a parameterized type with more than one argument.
	ErrUnsupportedTypeArguments = errors.New("unsupported number of type arguments")

	// ErrInvalidTypeRef indicates a type string that cannot be parsed.
	ErrInvalidTypeRef = errors.New("invalid type reference")
)

// TypeRef is a semantic type: a short name with at most one generic argument.
type TypeRef struct {
	Name string // e.g. "String", "List"
	Arg  string // generic argument, empty for simple types
}

// Generic reports whether the type carries a generic argument.
func (t TypeRef) Generic() bool {
	return t.Arg != ""
}

// String renders the type as "Name" or "Name<Arg>".
func (t TypeRef) String() string {
	if !t.Generic() {
		return t.Name
	}
	return t.Name + "<" + t.Arg + ">"
}

// ShortName strips namespace qualification, returning the last
// dot-separated segment of name.
func ShortName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// ParseTypeRef parses a possibly qualified type string such as
// "kotlin.collections.List<kotlin.String>" into a TypeRef of short names.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)

	open := strings.IndexByte(s, '<')
	if open < 0 {
		name := ShortName(s)
		if name == "" || strings.ContainsAny(s, ">,") {
			return TypeRef{}, fmt.Errorf("%w: %q", ErrInvalidTypeRef, s)
		}
		return TypeRef{Name: name}, nil
	}

	if !strings.HasSuffix(s, ">") {
		return TypeRef{}, fmt.Errorf("%w: %q", ErrInvalidTypeRef, s)
	}

	name := ShortName(s[:open])
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if name == "" || inner == "" {
		return TypeRef{}, fmt.Errorf("%w: %q", ErrInvalidTypeRef, s)
	}
	if strings.ContainsAny(inner, "<>") {
		return TypeRef{}, fmt.Errorf("%w: %q", ErrUnsupportedGenericDepth, s)
	}
	if strings.Contains(inner, ",") {
		return TypeRef{}, fmt.Errorf("%w: %q", ErrUnsupportedTypeArguments, s)
	}

	return TypeRef{Name: name, Arg: ShortName(inner)}, nil
}
