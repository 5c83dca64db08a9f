// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cryptoblk/corduroy/internal/logging"
	"github.com/cryptoblk/corduroy/internal/prompts"
	"github.com/cryptoblk/corduroy/internal/translate"
)

// isInteractive reports whether forms may be shown.
var isInteractive = func() bool { return prompts.Interactive(os.Stdin) }

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "corduroy",
		Short: "Generate ledger schema definitions from type descriptors",
		Long: `corduroy renders enum and record type descriptors as ledger schema
definitions: Corda contract states, Hyperledger Composer models and
markdown reference pages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.New(cmd.ErrOrStderr(), verbose)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newGenerateCmd(translators))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newDialectsCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
