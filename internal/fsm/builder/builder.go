// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package builder reconstructs a graph.Graph from an ordered sequence of
// trace frames, feeding each frame's changes through a registry.Registry
// to obtain canonical snapshots and wiring transitions between
// consecutively observed states.
package builder

import (
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/participant"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/registry"
)

// sentinelParticipantID tags the synthetic uniqueness participant
// appended when CombineStates is false, keeping every observation its
// own node regardless of snapshot content.
const sentinelParticipantID = 1000

// Frame is one observation in the trace: a timestamp, a polarity, and
// the set of per-channel byte changes observed at that instant.
type Frame struct {
	Timestamp uint64
	IsInput   bool
	Changes   []registry.Change
}

// Options configures the builder. CombineStates mirrors
// registry.Options.CombineStates but is consulted by the builder itself
// to decide whether to append the disambiguating sentinel participant;
// the rest of the registry behavior is configured by the Options of the
// registry.Registry passed to Build.
type Options struct {
	CombineStates bool
}

// Build replays frames through reg and returns the resulting graph. The
// very first frame that yields a non-empty canonical snapshot becomes
// the start node and produces no transition — there is no predecessor
// to link from yet.
func Build(frames []Frame, reg *registry.Registry, opts Options) *graph.Graph {
	g := graph.New()
	var prev *graph.Node

	for _, f := range frames {
		values := reg.Snapshot(f.IsInput, f.Changes)
		if len(values) == 0 {
			continue
		}

		if !opts.CombineStates {
			values = appendSentinel(values, g.Len())
		}

		node, _ := g.Insert(graph.Snapshot(values))

		if prev == nil {
			prev = node
			continue
		}

		g.AddTransition(prev.ID(), node.ID(), f.Timestamp)
		prev = node
	}

	return g
}

// appendSentinel returns values with a synthetic, never-interned output
// participant appended whose payload is the current node count (four
// bytes, big-endian), forcing every observation into a structurally
// distinct snapshot.
func appendSentinel(values []*participant.Value, stateCount int) []*participant.Value {
	out := make([]*participant.Value, len(values)+1)
	copy(out, values)
	payload := []byte{byte(stateCount >> 24), byte(stateCount >> 16), byte(stateCount >> 8), byte(stateCount)}
	out[len(values)] = participant.New(sentinelParticipantID, payload, false)
	return out
}
