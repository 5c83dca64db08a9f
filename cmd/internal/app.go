// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cryptoblk/corduroy/internal/commands"
	"github.com/cryptoblk/corduroy/internal/dialects"
)

const (
	// EnvFile is loaded from the working directory before commands run.
	EnvFile = ".env"

	// VerboseEnv enables debug logging when set to a non-empty value.
	VerboseEnv = "CORDUROY_VERBOSE"
)

// NewRootCmd returns the root command wired with the built-in dialects.
func NewRootCmd() *cobra.Command {
	return commands.NewRootCmd(dialects.Default())
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup, arguments).
// Variables from EnvFile never override ones already set; getenv reports
// the resulting environment.
func Run(ctx context.Context, getenv func(string) string, args []string) error {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if getenv(VerboseEnv) != "" {
		if err := rootCmd.PersistentFlags().Set("verbose", "true"); err != nil {
			return err
		}
	}
	return rootCmd.ExecuteContext(ctx)
}
