// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reduce implements the graph-rewriting passes that simplify a
// reconstructed state graph: CombineSequences, CombineSCC, MergeCircuits,
// RemoveInputStates, plus the helper passes RenumberStates, RelativeTimes
// and CutToPart. Every pass is a total function from graph to graph; all
// preserve the node-set/transition invariants documented on graph.Graph.
package reduce

import "github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"

// isPassThrough reports whether n is a non-start node with indegree
// exactly 1 and at least one outgoing edge — a candidate for chain
// contraction.
func isPassThrough(g *graph.Graph, n *graph.Node) bool {
	return n.ID() != g.StartNode().ID() && n.Indegree == 1 && len(n.Transitions) > 0
}

// CombineSequences collapses maximal non-branching chains of
// pass-through nodes into the chain's head, then physically deletes
// every node that was absorbed. Returns the number of deleted nodes.
func CombineSequences(g *graph.Graph) (*graph.Graph, int) {
	start := g.StartNode()
	if start == nil {
		return g, 0
	}

	rewritten := make(map[graph.NodeID]map[graph.NodeID]*graph.TimestampSet)

	for _, n := range g.Nodes() {
		if n.ID() != start.ID() && isPassThrough(g, n) {
			continue
		}

		newTransitions := make(map[graph.NodeID]*graph.TimestampSet)
		type frame = map[graph.NodeID]*graph.TimestampSet
		pending := []frame{n.Transitions}

		for len(pending) > 0 {
			cur := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			for targetID, ts := range cur {
				target := g.Node(targetID)
				if target == nil {
					continue
				}

				if target.Indegree == 1 && len(target.Transitions) > 0 && target.ID() != start.ID() {
					pending = append(pending, target.Transitions)
					continue
				}

				if existing, ok := newTransitions[targetID]; ok {
					existing.Merge(ts)
					target.Indegree--
					if target.Indegree == 1 && len(target.Transitions) > 0 && target.ID() != start.ID() {
						delete(newTransitions, targetID)
						pending = append(pending, target.Transitions)
					}
				} else {
					newTransitions[targetID] = ts.Clone()
				}
			}
		}

		rewritten[n.ID()] = newTransitions
	}

	for id, nt := range rewritten {
		n := g.Node(id)
		n.Transitions = nt
	}

	deleted := 0
	return g.DeleteWhere(func(n *graph.Node) bool {
		if n.ID() != start.ID() && n.Indegree == 1 && len(n.Transitions) > 0 {
			deleted++
			return true
		}
		return false
	}), deleted
}
