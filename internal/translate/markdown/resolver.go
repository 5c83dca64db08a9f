// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package markdown provides markdown documentation of type descriptors.
package markdown

import (
	"github.com/cryptoblk/corduroy/internal/translate"
)

type resolver struct{}

func (r *resolver) NamedType(name string) string {
	return name
}

func (r *resolver) GenericType(name, arg string) string {
	return name + "<" + arg + ">"
}

func (r *resolver) EnrichField(_ *translate.Field) {}
