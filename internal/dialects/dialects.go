// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package dialects assembles the built-in translator register.
package dialects

import (
	"github.com/cryptoblk/corduroy/internal/translate"
	"github.com/cryptoblk/corduroy/internal/translate/composer"
	"github.com/cryptoblk/corduroy/internal/translate/corda"
	"github.com/cryptoblk/corduroy/internal/translate/markdown"
)

// Built-in dialect names.
const (
	Corda    = "corda"
	Composer = "composer"
	Markdown = "markdown"
)

// Default returns a fresh register holding every built-in dialect.
func Default() translate.Register {
	translators := make(translate.Register)
	translators[Corda] = &corda.Translator{}
	translators[Composer] = &composer.Translator{}
	translators[Markdown] = &markdown.Translator{}
	return translators
}
