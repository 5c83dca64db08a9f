// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoblk/corduroy/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the corduroy version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
}
