// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package corda provides the Corda contract-state schema dialect.
package corda

import (
	"github.com/cryptoblk/corduroy/internal/translate"
)

// resolver keeps short type names as they are; Kotlin shares them.
type resolver struct{}

func (r *resolver) NamedType(name string) string {
	return name
}

func (r *resolver) GenericType(name, arg string) string {
	return name + "<" + arg + ">"
}

func (r *resolver) EnrichField(_ *translate.Field) {}
