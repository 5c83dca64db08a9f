// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.True(t, strings.HasPrefix(info, "corduroy version "+Version))
	assert.Contains(t, info, "commit: "+Commit)
	assert.Contains(t, info, runtime.Version())
}

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestFill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	got := fill(Build{Version: "dev", Commit: "none", Date: "unknown"}, info)
	assert.Equal(t, Build{Version: "v0.3.1", Commit: "0123456", Date: "2026-10-01T12:00:00Z"}, got)
}

func TestFill_KeepsLdflags(t *testing.T) {
	info := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fedcba9876"}},
	}

	in := Build{Version: "1.2.0", Commit: "abc1234", Date: "2026-01-02"}
	assert.Equal(t, in, fill(in, info))
}
