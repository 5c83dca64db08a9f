// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package config handles corduroy project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "generated"

// Config represents the corduroy.yaml project configuration file.
type Config struct {
	Version  int      `yaml:"version"`
	Model    string   `yaml:"model"`
	Output   string   `yaml:"output,omitempty"`
	Dialects []string `yaml:"dialects,omitempty"`
}

// Load reads a Config from a file path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Model == "" {
		return errors.New("model path is required")
	}
	for _, d := range c.Dialects {
		if d == "" {
			return errors.New("dialect names must not be empty")
		}
	}
	return nil
}

// OutputDir returns the configured output directory or DefaultOutput.
func (c *Config) OutputDir() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}
