// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import "github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"

// CutToPart restricts the graph to the subgraph reachable from the node
// with Index == startIndex, stopping outgoing exploration once a node
// with Index == endIndex is reached. ignoreBackEdges drops edges landing
// back at startIndex; a non-nil tabooIndex drops edges landing at that
// index. The terminal node's transitions are pruned to stay inside the
// surviving set. Returns nil if startIndex does not name a live node.
func CutToPart(g *graph.Graph, startIndex, endIndex int, ignoreBackEdges bool, tabooIndex *int) *graph.Graph {
	var startNode *graph.Node
	for _, n := range g.Nodes() {
		if n.Index == startIndex {
			startNode = n
			break
		}
	}
	if startNode == nil {
		return nil
	}

	visited := make(map[graph.NodeID]bool)
	stack := []*graph.Node{startNode}
	visited[startNode.ID()] = true

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for toID := range n.Transitions {
			target := g.Node(toID)
			if target == nil {
				continue
			}
			if ignoreBackEdges && target.Index == startIndex {
				delete(n.Transitions, toID)
				continue
			}
			if tabooIndex != nil && target.Index == *tabooIndex {
				delete(n.Transitions, toID)
				continue
			}
		}

		if n.Index == endIndex {
			continue
		}

		for toID := range n.Transitions {
			if !visited[toID] {
				visited[toID] = true
				if next := g.Node(toID); next != nil {
					stack = append(stack, next)
				}
			}
		}
	}

	out := g.DeleteWhere(func(n *graph.Node) bool { return !visited[n.ID()] })

	for _, n := range out.Nodes() {
		if n.Index == startIndex {
			out.SetStart(n.ID())
			break
		}
	}

	// Prune the terminal node's transitions to targets outside the
	// surviving set (DeleteWhere already drops such edges, so this is a
	// no-op safety net matching the source's explicit final pass).
	for _, n := range out.Nodes() {
		if n.Index == endIndex {
			for toID := range n.Transitions {
				if out.Node(toID) == nil {
					delete(n.Transitions, toID)
				}
			}
		}
	}

	return out
}
