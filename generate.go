// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package corduroy renders ledger schema definitions from Go types.
//
// Enum types implement a Values method returning their constants in
// declaration order. Record types are structs whose exported fields are the
// record members, and which implement a Participants method naming the fields
// that own the state:
//
//	type Status string
//
//	func (Status) Values() []string { return []string{"ACTIVE", "CLOSED"} }
//
//	type Deal struct {
//		PartyA Party
//		PartyB Party
//		Amount int64
//	}
//
//	func (Deal) Participants() []string { return []string{"partyA", "partyB"} }
//
//	out, err := corduroy.Generate(corduroy.Corda, []any{Status("")}, []any{Deal{}})
package corduroy

import (
	"github.com/cryptoblk/corduroy/internal/dialects"
	"github.com/cryptoblk/corduroy/internal/introspect"
	"github.com/cryptoblk/corduroy/internal/translate"
)

// Dialect names accepted by Generate.
const (
	Corda    = dialects.Corda
	Composer = dialects.Composer
	Markdown = dialects.Markdown
)

// Errors reported by Generate; test with errors.Is.
var (
	ErrUnknownDialect           = translate.ErrUnknownDialect
	ErrMissingParticipants      = introspect.ErrMissingParticipants
	ErrUnsupportedGenericDepth  = translate.ErrUnsupportedGenericDepth
	ErrUnsupportedTypeArguments = translate.ErrUnsupportedTypeArguments
	ErrUnsupportedType          = introspect.ErrUnsupportedType
	ErrNotEnum                  = introspect.ErrNotEnum
	ErrNotRecord                = introspect.ErrNotRecord
	ErrEmptyEnum                = introspect.ErrEmptyEnum
	ErrDuplicateType            = introspect.ErrDuplicateType
)

// Generate renders the given enum and record values in dialect.
// On failure it returns an empty string and no partial output.
func Generate(dialect string, enumTypes, recordTypes []any) (string, error) {
	translators := dialects.Default()
	if _, err := translators.Get(dialect); err != nil {
		return "", err
	}

	model, err := introspect.Describe(enumTypes, recordTypes)
	if err != nil {
		return "", err
	}

	out, err := translators.Generate(dialect, model)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Dialects returns the supported dialect names in sorted order.
func Dialects() []string {
	return dialects.Default().Available()
}
