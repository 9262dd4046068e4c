// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import "github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"

// RelativeTimes walks the unique earliest-successor timeline from the
// start node (the same traversal rule RemoveInputStates uses) and
// rewrites each consumed timestamp t on its edge to t-previous. After
// this pass the timestamp sets no longer satisfy the global
// monotonicity invariant and must not be fed into most other reducers.
func RelativeTimes(g *graph.Graph) {
	current := g.StartNode()
	if current == nil {
		return
	}

	lastTimestamp := uint64(0)

	for {
		next, t, ok := earliestSuccessorAfter(g, current, lastTimestamp)
		if !ok {
			return
		}

		relTime := t - lastTimestamp
		lastTimestamp = t

		set := current.Transitions[next.ID()]
		set.Remove(t)
		set.Insert(relTime)

		current = next
	}
}

// earliestSuccessorAfterInclusive returns the successor reached by the
// smallest timestamp greater than or equal to after.
func earliestSuccessorAfterInclusive(g *graph.Graph, n *graph.Node, after uint64) (*graph.Node, uint64, bool) {
	var best *graph.Node
	var bestTime uint64
	found := false

	for toID, ts := range n.Transitions {
		for _, t := range ts.All() {
			if t < after {
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
