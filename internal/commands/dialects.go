// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoblk/corduroy/internal/translate"
)

func newDialectsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the available output dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range translators.Available() {
				t, err := translators.Get(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, t.FileExtension()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
