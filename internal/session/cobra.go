// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package session

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PreRunE function that loads the project context and
// stores it in the command's context. When the command has a non-empty
// "model" flag, that type document is loaded without a project config.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	load := Load
	if f := cmd.Flags().Lookup("model"); f != nil && f.Value.String() != "" {
		modelPath := f.Value.String()
		load = func(ctx context.Context) (context.Context, error) {
			return LoadModel(ctx, modelPath)
		}
	}

	ctx, err := load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
