// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads and validates the fsmreconstruct JSON config file,
// exposing it as a package-level Keys value the way the teacher's
// internal/config does.
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/builder"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/registry"
	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
)

// ProgramConfig mirrors the registry/builder options plus the ambient
// CLI/metrics knobs, as a single JSON-configurable struct.
type ProgramConfig struct {
	CombineStates      bool   `json:"combineStates"`
	OnlyOutput         bool   `json:"onlyOutput"`
	CombinedStates     bool   `json:"combinedStates"`
	CountDuplicates    bool   `json:"countDuplicates"`
	LogLevel           string `json:"logLevel"`
	MetricsAddr        string `json:"metricsAddr"`
	RenderCacheEntries int    `json:"renderCacheEntries"`
}

// Keys holds the active configuration, defaulted before Init overrides
// it from a config file.
var Keys = ProgramConfig{
	CombineStates:      true,
	OnlyOutput:         false,
	CombinedStates:     false,
	CountDuplicates:    false,
	LogLevel:           "info",
	MetricsAddr:        "",
	RenderCacheEntries: 256,
}

// Init reads, schema-validates, and decodes flagConfigFile into Keys. A
// missing file is not an error (the defaults above apply); a malformed
// or schema-invalid file is fatal, exactly as the teacher's
// internal/config.Init treats bad config.
func Init(flagConfigFile string) {
	raw, err := os.ReadFile(flagConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal(err)
		}
		return
	}

	if err := validate(raw); err != nil {
		log.Fatalf("validate config: %v", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&Keys); err != nil {
		log.Fatal(err)
	}

	log.SetLogLevel(Keys.LogLevel)
}

// RegistryOptions projects the relevant config fields into
// registry.Options.
func (c ProgramConfig) RegistryOptions() registry.Options {
	return registry.Options{
		CombineStates:   c.CombineStates,
		OnlyOutput:      c.OnlyOutput,
		CombinedStates:  c.CombinedStates,
		CountDuplicates: c.CountDuplicates,
	}
}

// BuilderOptions projects the relevant config fields into
// builder.Options.
func (c ProgramConfig) BuilderOptions() builder.Options {
	return builder.Options{CombineStates: c.CombineStates}
}
