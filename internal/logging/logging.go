// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package logging carries a leveled logger through command contexts.
package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// New creates a text logger writing to w. Only warnings and errors are
// emitted unless verbose is set, which enables debug output.
func New(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// From returns the logger stored in ctx. Without one, a logger that
// discards everything is returned, so callers never need a nil check.
func From(ctx context.Context) logrus.FieldLogger {
	if logger, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger); ok {
		return logger
	}
	return discard
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
