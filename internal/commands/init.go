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

	"github.com/cryptoblk/corduroy/internal/config"
	"github.com/cryptoblk/corduroy/internal/logging"
	"github.com/cryptoblk/corduroy/internal/prompts"
	"github.com/cryptoblk/corduroy/internal/session"
	"github.com/cryptoblk/corduroy/internal/translate"
	"github.com/cryptoblk/corduroy/internal/typedef"
)

// ErrAlreadyInitialized is returned by init when a config file already exists.
var ErrAlreadyInitialized = errors.New("project already initialized")

type initOptions struct {
	model    string
	format   string
	output   string
	dialects []string
	noInput  bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new corduroy project",
		Long: `Initialize a new corduroy project with a corduroy.yaml configuration file.
A sample type document is written when the referenced one does not exist.`,
		Example: `  # Interactive mode
  corduroy init

  # Non-interactive
  corduroy init --no-input --dialect corda --dialect composer
  corduroy init --model model/types.json --format json --output build --no-input`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "types.yaml", "Path to the type document")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Type document format (yaml or json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output directory for generated files")
	cmd.Flags().StringSliceVarP(&opts.dialects, "dialect", "d", nil, fmt.Sprintf("Dialects to generate (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	log := logging.From(cmd.Context())

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := session.ConfigPath(cwd)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w: %s exists", ErrAlreadyInitialized, filepath.Base(configPath))
	}

	if !opts.noInput && isInteractive() {
		answers := prompts.InitAnswers{
			Model:    opts.model,
			Format:   opts.format,
			Output:   opts.output,
			Dialects: opts.dialects,
		}
		if err := prompts.RunInitForm(&answers, translators.Available()); err != nil {
			return err
		}
		opts.model, opts.format, opts.output, opts.dialects = answers.Model, answers.Format, answers.Output, answers.Dialects
	}

	writer, err := typedef.WriterFor(opts.format)
	if err != nil {
		return fmt.Errorf("%w: %s", err, opts.format)
	}
	if filepath.Ext(opts.model) == "" {
		opts.model += writer.Extension()
	}

	for _, d := range opts.dialects {
		if _, err := translators.Get(d); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:  config.CurrentConfigVersion,
		Model:    opts.model,
		Dialects: opts.dialects,
	}
	if opts.output != config.DefaultOutput {
		cfg.Output = opts.output
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	modelPath := opts.model
	if !filepath.IsAbs(modelPath) {
		modelPath = filepath.Join(cwd, modelPath)
	}

	modelStatus := "existing"
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(modelPath), 0o750); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
		if err := writer.Write(typedef.Sample(), modelPath); err != nil {
			return fmt.Errorf("failed to write type document: %w", err)
		}
		modelStatus = "sample created"
		log.WithField("path", modelPath).Debug("wrote sample type document")
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}
	log.WithField("path", configPath).Debug("wrote configuration")

	dialects := "none"
	if len(cfg.Dialects) > 0 {
		dialects = strings.Join(cfg.Dialects, ", ")
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: filepath.Base(configPath)},
		{Label: "Model", Value: fmt.Sprintf("%s (%s)", cfg.Model, modelStatus)},
		{Label: "Dialects", Value: dialects},
		{Label: "Output", Value: cfg.OutputDir()},
	}, "Initialization completed")

	return nil
}
