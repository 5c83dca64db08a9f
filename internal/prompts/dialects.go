// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// DialectSelect returns a multi-select field for choosing output dialects.
func DialectSelect(value *[]string, dialects []string) *huh.MultiSelect[string] {
	options := make([]huh.Option[string], len(dialects))
	for i, d := range dialects {
		options[i] = huh.NewOption(d, d)
	}
	return huh.NewMultiSelect[string]().
		Title("Dialects").
		Options(options...).
		Validate(func(s []string) error {
			if len(s) == 0 {
				return errors.New("select at least one dialect")
			}
			return nil
		}).
		Value(value)
}

// RunDialectForm asks for the dialects to generate.
func RunDialectForm(value *[]string, dialects []string) error {
	return huh.NewForm(
		huh.NewGroup(DialectSelect(value, dialects)),
	).WithTheme(Theme()).Run()
}
