// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoblk/corduroy/internal/config"
	"github.com/cryptoblk/corduroy/internal/dialects"
	"github.com/cryptoblk/corduroy/internal/session"
	"github.com/cryptoblk/corduroy/internal/translate"
	"github.com/cryptoblk/corduroy/internal/typedef"
)

// inProject switches into an empty temp directory with prompts disabled.
func inProject(t *testing.T) string {
	t.Helper()
	t.Setenv(session.ConfigEnv, "")

	orig := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = orig })

	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func execute(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCmd(dialects.Default())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func dealPath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "deal.yaml"))
	require.NoError(t, err)
	return path
}

func TestInit_Defaults(t *testing.T) {
	dir := inProject(t)

	out, _, err := execute("init", "--no-input")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization completed")
	assert.Contains(t, out, "sample created")

	cfg, err := config.Load(filepath.Join(dir, session.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "types.yaml", cfg.Model)
	assert.Empty(t, cfg.Output)
	assert.Empty(t, cfg.Dialects)

	f, err := os.Open(filepath.Join(dir, "types.yaml"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	doc, err := typedef.YAML.Parse(f)
	require.NoError(t, err)
	assert.Equal(t, typedef.Sample(), doc)
}

func TestInit_Flags(t *testing.T) {
	dir := inProject(t)

	_, _, err := execute("init", "--no-input",
		"--model", "model/types", "--format", "json",
		"--dialect", "corda,composer", "--output", "build")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, session.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "model/types.json", cfg.Model)
	assert.Equal(t, "build", cfg.Output)
	assert.Equal(t, []string{"corda", "composer"}, cfg.Dialects)
	assert.FileExists(t, filepath.Join(dir, "model", "types.json"))
}

func TestInit_KeepsExistingModel(t *testing.T) {
	data, err := os.ReadFile(dealPath(t))
	require.NoError(t, err)
	dir := inProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.yaml"), data, 0o600))

	out, _, err := execute("init", "--no-input")
	require.NoError(t, err)
	assert.Contains(t, out, "existing")

	kept, err := os.ReadFile(filepath.Join(dir, "types.yaml"))
	require.NoError(t, err)
	assert.Equal(t, data, kept)
}

func TestInit_AlreadyInitialized(t *testing.T) {
	inProject(t)

	_, _, err := execute("init", "--no-input")
	require.NoError(t, err)

	_, _, err = execute("init", "--no-input")
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInit_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown dialect", []string{"--dialect", "solidity"}, translate.ErrUnknownDialect},
		{"unknown format", []string{"--format", "toml"}, typedef.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := inProject(t)

			_, _, err := execute(append([]string{"init", "--no-input"}, tt.args...)...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoFileExists(t, filepath.Join(dir, session.ConfigFileName))
		})
	}
}

func TestGenerate_Args(t *testing.T) {
	dir := inProject(t)
	_, _, err := execute("init", "--no-input")
	require.NoError(t, err)

	out, _, err := execute("generate", "corda", "composer")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 2 dialect(s)")

	kt, err := os.ReadFile(filepath.Join(dir, "generated", "corda.kt"))
	require.NoError(t, err)
	assert.Contains(t, string(kt), "enum class ExampleEnum {\n\tONE,\n\tTWO,\n\tTHREE\n}\n")
	assert.Contains(t, string(kt), "listOf(partyA, partyB)): ContractState\n")

	cto, err := os.ReadFile(filepath.Join(dir, "generated", "composer.cto"))
	require.NoError(t, err)
	assert.Contains(t, string(cto), "asset ExampleState identified by id {\n\to String id\n\t--> Party partyA\n")
}

func TestGenerate_ConfiguredDialects(t *testing.T) {
	dir := inProject(t)
	_, _, err := execute("init", "--no-input", "--dialect", "markdown", "--output", "docs")
	require.NoError(t, err)

	_, _, err = execute("generate")
	require.NoError(t, err)

	md, err := os.ReadFile(filepath.Join(dir, "docs", "markdown.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "### ExampleState")
}

func TestGenerate_OutputFlag(t *testing.T) {
	dir := inProject(t)
	_, _, err := execute("init", "--no-input")
	require.NoError(t, err)

	_, _, err = execute("generate", "corda", "-o", "out")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "out", "corda.kt"))
	assert.NoDirExists(t, filepath.Join(dir, "generated"))
}

func TestGenerate_NoDialects(t *testing.T) {
	inProject(t)
	_, _, err := execute("init", "--no-input")
	require.NoError(t, err)

	_, _, err = execute("generate")
	assert.ErrorContains(t, err, "no dialects selected")
}

func TestGenerate_UnknownDialectWritesNothing(t *testing.T) {
	dir := inProject(t)
	_, _, err := execute("init", "--no-input")
	require.NoError(t, err)

	_, _, err = execute("generate", "corda", "solidity")
	assert.ErrorIs(t, err, translate.ErrUnknownDialect)
	assert.NoDirExists(t, filepath.Join(dir, "generated"))
}

func TestGenerate_StdoutWithModel(t *testing.T) {
	model := dealPath(t)
	dir := inProject(t)

	out, _, err := execute("generate", "composer", "--model", model, "--stdout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "participant Party identified by id {\n"))
	assert.Contains(t, out, "\to Long amount\n")
	assert.Contains(t, out, "\to Status status\n")
	assert.Contains(t, out, "\to String[] tags\n")
	assert.NoDirExists(t, filepath.Join(dir, "generated"))
}

func TestGenerate_NotInitialized(t *testing.T) {
	inProject(t)

	_, _, err := execute("generate", "corda")
	assert.ErrorIs(t, err, session.ErrNotInitialized)
}

func TestGenerate_Verbose(t *testing.T) {
	model := dealPath(t)
	inProject(t)

	_, stderr, err := execute("generate", "corda", "--model", model, "--stdout", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "dialect=corda")

	_, stderr, err = execute("generate", "corda", "--model", model, "--stdout")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestValidate(t *testing.T) {
	inProject(t)
	_, _, err := execute("init", "--no-input")
	require.NoError(t, err)

	out, _, err := execute("validate")
	require.NoError(t, err)
	assert.Contains(t, out, "types.yaml")
	assert.Contains(t, out, "Type document is valid")
}

func TestValidate_InvalidModel(t *testing.T) {
	dir := inProject(t)
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 1\nrecords:\n  - name: Orphan\n"), 0o600))

	_, _, err := execute("validate", "--model", bad)
	assert.ErrorIs(t, err, session.ErrInvalidModel)
}

func TestDialects(t *testing.T) {
	out, _, err := execute("dialects")
	require.NoError(t, err)
	assert.Equal(t, "composer   .cto\ncorda      .kt\nmarkdown   .md\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "corduroy version "))
}
