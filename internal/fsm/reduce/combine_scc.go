// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import "github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"

type sccFrame struct {
	node    *graph.Node
	targets []graph.NodeID
	next    int
}

// CombineSCC collapses every strongly connected component onto its
// designated root (the member with the lexicographically smallest DFS
// lowlink, using Node.Index as the discovery number), using an iterative
// variant of Tarjan's algorithm. Returns the number of deleted nodes.
func CombineSCC(g *graph.Graph) (*graph.Graph, int) {
	start := g.StartNode()
	if start == nil {
		return g, 0
	}

	lowlink := make(map[graph.NodeID]graph.NodeID)

	sortedTargets := func(n *graph.Node) []graph.NodeID {
		ids := make([]graph.NodeID, 0, len(n.Transitions))
		for id := range n.Transitions {
			ids = append(ids, id)
		}
		return ids
	}

	stack := []*sccFrame{{node: start, targets: sortedTargets(start)}}
	lowlink[start.ID()] = start.ID()

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		n := top.node

		descended := false
		for top.next < len(top.targets) {
			targetID := top.targets[top.next]
			top.next++
			target := g.Node(targetID)
			if target == nil {
				continue
			}

			if _, seen := lowlink[target.ID()]; !seen {
				if target.Index > n.Index {
					lowlink[target.ID()] = target.ID()
					stack = append(stack, &sccFrame{node: target, targets: sortedTargets(target)})
					descended = true
					break
				}
				if g.Node(lowlink[n.ID()]).Index > target.Index {
					lowlink[n.ID()] = target.ID()
				}
				continue
			}

			if g.Node(lowlink[target.ID()]).Index < g.Node(lowlink[n.ID()]).Index {
				lowlink[n.ID()] = lowlink[target.ID()]
			}
		}
		if descended {
			continue
		}

		stack = stack[:len(stack)-1]

		if lowlink[n.ID()] != n.ID() {
			root := g.Node(lowlink[n.ID()])
			for targetID, ts := range n.Transitions {
				target := g.Node(targetID)
				if lowlink[target.ID()] != target.ID() {
					continue
				}
				if existing, ok := root.Transitions[targetID]; ok {
					existing.Merge(ts)
					target.Indegree--
				} else {
					root.Transitions[targetID] = ts.Clone()
				}
			}
			n.Transitions = make(map[graph.NodeID]*graph.TimestampSet)
		} else {
			kept := make(map[graph.NodeID]*graph.TimestampSet)
			for targetID, ts := range n.Transitions {
				target := g.Node(targetID)
				if lowlink[target.ID()] == target.ID() {
					kept[targetID] = ts
				}
			}
			n.Transitions = kept
		}
	}

	deleted := 0
	return g.DeleteWhere(func(n *graph.Node) bool {
		root, ok := lowlink[n.ID()]
		if !ok || root != n.ID() {
			deleted++
			return true
		}
		return false
	}), deleted
}
