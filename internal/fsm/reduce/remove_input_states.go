// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import "github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"

// earliestSuccessorAfter returns the successor reached by the smallest
// timestamp strictly greater than after, and that timestamp. Returns nil
// and 0 if no such transition exists.
func earliestSuccessorAfter(g *graph.Graph, n *graph.Node, after uint64) (*graph.Node, uint64, bool) {
	var best *graph.Node
	var bestTime uint64
	found := false

	for toID, ts := range n.Transitions {
		for _, t := range ts.All() {
			if t <= after {
				continue
			}
			if !found || t < bestTime {
				best = g.Node(toID)
				bestTime = t
				found = true
			}
			break
		}
	}

	return best, bestTime, found
}

// RemoveInputStates is only meaningful when snapshots are polarity-tagged
// (CombinedStates == false): it walks the earliest-successor timeline from
// the start node, skipping every node whose snapshot's leading
// participant is an input value, and links the most recent output node
// directly to the next output node with the landing timestamp. It
// allocates a fresh node set and replaces the old one wholesale.
func RemoveInputStates(g *graph.Graph) *graph.Graph {
	start := g.StartNode()
	if start == nil {
		return g
	}

	out := graph.New()
	newStart, _ := out.Insert(start.Value)

	current := start
	currentTime := uint64(0)
	prevNew := newStart

	for len(current.Transitions) > 0 {
		next, t, ok := earliestSuccessorAfter(g, current, currentTime)
		if !ok {
			break
		}
		currentTime = t
		current = next

		for current.Value.LeadingIsInput() && len(current.Transitions) > 0 {
			next, t, ok := earliestSuccessorAfter(g, current, currentTime)
			if !ok {
				break
			}
			currentTime = t
			current = next
		}
		if current.Value.LeadingIsInput() {
			break
		}

		// Not always correct: indegree is bumped on every revisit of an
		// already-seen target, on top of AddTransition's own first-edge
		// bookkeeping, so it can overcount relative to the number of
		// distinct predecessors once loops are involved.
		landingNode, created := out.Insert(current.Value)
		if !created {
			landingNode.Indegree++
		}
		out.AddTransition(prevNew.ID(), landingNode.ID(), currentTime)
		prevNew = landingNode
	}

	return out
}
