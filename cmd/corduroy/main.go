// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

// Package main is the entry point for the corduroy CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cryptoblk/corduroy/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
