// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by RunInitForm. Fields that are
// already set are used as defaults.
type InitAnswers struct {
	Model    string
	Format   string
	Output   string
	Dialects []string
}

// RunInitForm runs the interactive form for the init command.
func RunInitForm(a *InitAnswers, available []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to type document").
				Placeholder("types.yaml").
				Validate(identifierValidator("type document path")).
				Value(&a.Model),
			huh.NewSelect[string]().
				Title("Document format").
				Options(
					huh.NewOption("YAML (recommended)", "yaml"),
					huh.NewOption("JSON", "json"),
				).
				Value(&a.Format),
		),
		huh.NewGroup(
			DialectSelect(&a.Dialects, available),
			huh.NewInput().
				Title("Output directory").
				Placeholder("generated").
				Validate(requiredValidator("output directory")).
				Value(&a.Output),
		),
	).WithTheme(Theme()).Run()
}
