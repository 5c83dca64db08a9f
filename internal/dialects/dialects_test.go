// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package dialects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{Composer, Corda, Markdown}, r.Available())

	tests := map[string]string{
		Corda:    ".kt",
		Composer: ".cto",
		Markdown: ".md",
	}
	for name, ext := range tests {
		tr, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, ext, tr.FileExtension(), name)
	}
}

func TestDefault_Fresh(t *testing.T) {
	a := Default()
	delete(a, Corda)

	_, err := Default().Get(Corda)
	assert.NoError(t, err)
}
