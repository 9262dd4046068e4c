// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package print

import "github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"

// earliestSuccessorAfter returns the successor reached by the smallest
// timestamp strictly greater than after, and that timestamp.
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
