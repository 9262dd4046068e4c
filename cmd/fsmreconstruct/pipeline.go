// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import (
	"os"
	"strings"

	"github.com/ClusterCockpit/fsmreconstruct/internal/config"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/builder"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/reduce"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/registry"
	"github.com/ClusterCockpit/fsmreconstruct/internal/metrics"
	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
	"github.com/ClusterCockpit/fsmreconstruct/pkg/trace"
)

// buildGraphFromTrace reads and decodes flagTraceFile, then replays it
// through a freshly constructed registry/builder pair configured from
// config.Keys.
func buildGraphFromTrace() *graph.Graph {
	f, err := os.Open(flagTraceFile)
	if err != nil {
		log.Fatalf("fsmreconstruct: opening trace: %v", err)
	}
	defer f.Close()

	frames, err := trace.Decode(f)
	if err != nil {
		log.Fatalf("fsmreconstruct: decoding trace: %v", err)
	}

	reg := registry.New(config.Keys.RegistryOptions())
	g := builder.Build(frames, reg, config.Keys.BuilderOptions())
	metrics.ObserveGraphSize(g.Len(), countTransitions(g))
	return g
}

func countTransitions(g *graph.Graph) int {
	n := 0
	for _, node := range g.Nodes() {
		n += len(node.Transitions)
	}
	return n
}

// applyPasses runs the named reducer passes, in order, against g and
// finishes with RenumberStates; an empty passesFlag returns g unchanged,
// without renumbering. Recognized names:
// combine-sequences, combine-scc, merge-circuits, remove-input-states,
// relative-times.
func applyPasses(g *graph.Graph, passesFlag string) *graph.Graph {
	if passesFlag == "" {
		return g
	}

	for _, name := range strings.Split(passesFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		before := g.Len()
		switch name {
		case "combine-sequences":
			g, _ = reduce.CombineSequences(g)
		case "combine-scc":
			g, _ = reduce.CombineSCC(g)
		case "merge-circuits":
			g, _ = reduce.MergeCircuits(g)
		case "remove-input-states":
			g = reduce.RemoveInputStates(g)
		case "relative-times":
			reduce.RelativeTimes(g)
		default:
			log.Fatalf("fsmreconstruct: unknown reducer pass %q", name)
		}
		metrics.ObserveReducerPass(name, before-g.Len())
	}

	reduce.RenumberStates(g)
	metrics.ObserveGraphSize(g.Len(), countTransitions(g))
	return g
}
