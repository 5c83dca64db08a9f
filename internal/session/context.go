// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cryptoblk/corduroy/internal/config"
	"github.com/cryptoblk/corduroy/internal/logging"
	"github.com/cryptoblk/corduroy/internal/translate"
	"github.com/cryptoblk/corduroy/internal/typedef"
)

var (
	// ErrNotInitialized indicates no corduroy.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a corduroy project (corduroy.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrModelNotFound indicates the type document referenced by config doesn't exist.
	ErrModelNotFound = errors.New("type document not found")

	// ErrInvalidModel indicates the type document exists but couldn't be turned into descriptors.
	ErrInvalidModel = errors.New("invalid type document")
)

const (
	// ConfigFileName is the name of the corduroy configuration file.
	ConfigFileName = "corduroy.yaml"

	// ConfigEnv overrides ConfigFileName when set.
	ConfigEnv = "CORDUROY_CONFIG"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the descriptors
// built from its type document.
type Context struct {
	// Dir is the project root; relative config paths resolve against it.
	Dir string

	// Config is the loaded project configuration.
	Config *config.Config

	// Document is the parsed type-definition document.
	Document *typedef.Document

	// Model holds the descriptors built from Document.
	Model *translate.Model
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the session Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	log := logging.From(ctx)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := ConfigPath(cwd)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}
	log.WithField("config", configPath).Debug("loading project configuration")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	return load(ctx, cwd, cfg)
}

// LoadModel builds a context from a type document alone, without a project
// configuration file.
func LoadModel(ctx context.Context, modelPath string) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := &config.Config{
		Version: config.CurrentConfigVersion,
		Model:   modelPath,
	}
	return load(ctx, cwd, cfg)
}

func load(ctx context.Context, dir string, cfg *config.Config) (context.Context, error) {
	modelPath := cfg.Model
	if !filepath.IsAbs(modelPath) {
		modelPath = filepath.Join(dir, modelPath)
	}

	parser, err := typedef.ParserFor(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	f, err := os.Open(modelPath) //nolint:gosec // modelPath is derived from config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelNotFound, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	model, err := doc.Model()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	logging.From(ctx).WithFields(logrus.Fields{
		"model":   modelPath,
		"enums":   len(model.Enums),
		"records": len(model.Records),
	}).Debug("loaded type document")

	sessCtx := &Context{
		Dir:      dir,
		Config:   cfg,
		Document: doc,
		Model:    model,
	}

	return context.WithValue(ctx, contextKey{}, sessCtx), nil
}

// ConfigPath returns the config file path in dir, honouring ConfigEnv.
func ConfigPath(dir string) string {
	name := os.Getenv(ConfigEnv)
	if name == "" {
		name = ConfigFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}

// OutputDir returns the configured output directory resolved against Dir.
func (c *Context) OutputDir() string {
	out := c.Config.OutputDir()
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(c.Dir, out)
}
