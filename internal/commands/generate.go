// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cryptoblk/corduroy/internal/logging"
	"github.com/cryptoblk/corduroy/internal/prompts"
	"github.com/cryptoblk/corduroy/internal/session"
	"github.com/cryptoblk/corduroy/internal/translate"
)

type generateOptions struct {
	model  string
	output string
	stdout bool
}

type rendered struct {
	dialect string
	file    string
	data    []byte
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [dialect...]",
		Short: "Render the type document in one or more dialects",
		Long: fmt.Sprintf(`Render the project's type document in one or more dialects.

Dialects are taken from the arguments, or from corduroy.yaml when none are
given. Every dialect is rendered before any file is written.

Available dialects: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Dialects from corduroy.yaml
  corduroy generate

  # Specific dialects into a custom directory
  corduroy generate corda composer -o build/schemas

  # Without a project, straight to stdout
  corduroy generate composer --model types.yaml --stdout`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Type document to use instead of the project's")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured output)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print to stdout instead of writing files")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, args []string) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	log := logging.From(cmd.Context())

	names := args
	if len(names) == 0 {
		names = ctx.Config.Dialects
	}
	if len(names) == 0 && isInteractive() {
		if err := prompts.RunDialectForm(&names, translators.Available()); err != nil {
			return err
		}
	}
	if len(names) == 0 {
		return errors.New("no dialects selected; pass dialect names or set dialects in corduroy.yaml")
	}

	dir := ctx.OutputDir()
	if opts.output != "" {
		dir = opts.output
	}

	// Render everything up front so a failing dialect leaves no files behind.
	results := make([]rendered, 0, len(names))
	for _, name := range names {
		translator, err := translators.Get(name)
		if err != nil {
			return fmt.Errorf("%w. Available dialects: %s", err, strings.Join(translators.Available(), ", "))
		}
		data, err := translator.Translate(ctx.Model)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.WithField("dialect", name).Debug("rendered")
		results = append(results, rendered{
			dialect: name,
			file:    filepath.Join(dir, name+translator.FileExtension()),
			data:    data,
		})
	}

	out := cmd.OutOrStdout()
	if opts.stdout {
		for _, r := range results {
			if _, err := out.Write(r.data); err != nil {
				return err
			}
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fields := make([]prompts.ResultField, 0, len(results))
	for _, r := range results {
		if err := os.WriteFile(r.file, r.data, 0o600); err != nil {
			return fmt.Errorf("%s: %w", r.dialect, err)
		}
		log.WithField("dialect", r.dialect).WithField("path", r.file).Debug("wrote file")
		fields = append(fields, prompts.ResultField{Label: r.dialect, Value: r.file})
	}

	prompts.PrintResult(out, fields, fmt.Sprintf("Generated %d dialect(s)", len(results)))
	return nil
}
