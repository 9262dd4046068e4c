// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trace decodes the JSON trace format into builder.Frame values.
// Parsing and schema validation are explicitly outside the
// reconstruction core; this package is the CLI's on-ramp into it.
package trace

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/builder"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/registry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*
var schemaFiles embed.FS

func loadSchema(s string) (io.ReadCloser, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	return schemaFiles.Open(u.Path)
}

func init() {
	jsonschema.Loaders["embedFS"] = loadSchema
}

// change is the wire form of one observed byte-vector update.
type change struct {
	ParticipantID uint16 `json:"participantId"`
	Bytes         []byte `json:"bytes"`
}

// frame is the wire form of one timestamped trace frame.
type frame struct {
	Timestamp uint64   `json:"timestamp"`
	IsInput   bool     `json:"isInput"`
	Changes   []change `json:"changes"`
}

// Decode parses and schema-validates a JSON trace document, returning
// the builder.Frame sequence in file order. Malformed JSON or a
// schema-validation failure is returned as a wrapped error; this is the
// parser's contract, not the core's.
func Decode(r io.Reader) ([]builder.Frame, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("trace: reading input: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("trace: schema validation: %w", err)
	}

	var wire []frame
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("trace: decoding frames: %w", err)
	}

	frames := make([]builder.Frame, 0, len(wire))
	for _, f := range wire {
		changes := make([]registry.Change, 0, len(f.Changes))
		for _, c := range f.Changes {
			changes = append(changes, registry.Change{
				ParticipantID: c.ParticipantID,
				Bytes:         c.Bytes,
			})
		}
		frames = append(frames, builder.Frame{
			Timestamp: f.Timestamp,
			IsInput:   f.IsInput,
			Changes:   changes,
		})
	}
	return frames, nil
}

func validate(raw []byte) error {
	s, err := jsonschema.Compile("embedFS://schemas/trace.schema.json")
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}

	return s.Validate(v)
}
