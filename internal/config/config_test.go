// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	fp := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(fp, []byte(body), 0o644))
	return fp
}

func TestInitOverridesDefaults(t *testing.T) {
	fp := writeConfig(t, `{
		"combineStates": false,
		"onlyOutput": true,
		"logLevel": "debug",
		"metricsAddr": ":9090",
		"renderCacheEntries": 64
	}`)

	Init(fp)

	assert.False(t, Keys.CombineStates)
	assert.True(t, Keys.OnlyOutput)
	assert.Equal(t, "debug", Keys.LogLevel)
	assert.Equal(t, ":9090", Keys.MetricsAddr)
	assert.Equal(t, 64, Keys.RenderCacheEntries)
}

func TestInitMissingFileKeepsDefaults(t *testing.T) {
	Keys = ProgramConfig{
		CombineStates:      true,
		LogLevel:           "info",
		RenderCacheEntries: 256,
	}

	Init(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.True(t, Keys.CombineStates)
	assert.Equal(t, "info", Keys.LogLevel)
	assert.Equal(t, 256, Keys.RenderCacheEntries)
}

func TestRegistryOptionsProjection(t *testing.T) {
	c := ProgramConfig{CombineStates: true, OnlyOutput: true, CombinedStates: false, CountDuplicates: true}
	opts := c.RegistryOptions()

	assert.True(t, opts.CombineStates)
	assert.True(t, opts.OnlyOutput)
	assert.False(t, opts.CombinedStates)
	assert.True(t, opts.CountDuplicates)
}

func TestBuilderOptionsProjection(t *testing.T) {
	c := ProgramConfig{CombineStates: false}
	assert.False(t, c.BuilderOptions().CombineStates)
}
