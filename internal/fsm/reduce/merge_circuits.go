// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import (
	"sort"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
)

// depreciated reports whether n has been tombstoned by a previous
// MergeCircuits redirect: indegree zero and exactly one outgoing edge.
func depreciated(n *graph.Node) bool {
	return n.Indegree == 0 && len(n.Transitions) == 1
}

// chaseToTerminus follows a chain of already-depreciated single-edge
// redirects to its current canonical terminus.
func chaseToTerminus(g *graph.Graph, n *graph.Node) *graph.Node {
	for depreciated(n) {
		for toID := range n.Transitions {
			next := g.Node(toID)
			if next == nil || next.ID() == n.ID() {
				return n
			}
			n = next
			break
		}
	}
	return n
}

// MergeCircuits is a heuristic, non-fixed-point pass intended to fuse
// simple back-edge loops reachable within a narrow index window. It is
// not guaranteed to find every circuit, and applying it a second time
// may still find more to fuse.
func MergeCircuits(g *graph.Graph) (*graph.Graph, int) {
	start := g.StartNode()
	if start == nil {
		return g, 0
	}

	sorted := append([]*graph.Node(nil), g.Nodes()...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for _, n := range sorted {
		if n.Indegree == 0 && n.ID() != start.ID() {
			continue
		}
		if depreciated(n) {
			continue
		}

		highestIndex := n.Index

		var worklist []*graph.Node
		var smallest *graph.Node

		for toID := range n.Transitions {
			adjacent := g.Node(toID)
			if adjacent == nil || adjacent.Index >= highestIndex {
				continue
			}
			terminus := chaseToTerminus(g, adjacent)
			worklist = append(worklist, terminus)
			if smallest == nil || terminus.Index < smallest.Index {
				smallest = terminus
			}
		}

		if len(worklist) == 0 || smallest == nil {
			continue
		}

		for toID := range smallest.Transitions {
			adjacent := g.Node(toID)
			if adjacent == nil {
				continue
			}
			if adjacent.Index > smallest.Index && adjacent.Index < highestIndex {
				worklist = append(worklist, adjacent)
			}
		}

		mergeInto(g, n, smallest, highestIndex)

		for len(worklist) > 0 {
			cur := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]

			if cur.ID() == smallest.ID() {
				continue
			}

			if depreciated(cur) {
				redirectsElsewhere := true
				for toID := range cur.Transitions {
					if toID == smallest.ID() {
						redirectsElsewhere = false
					}
				}
				if redirectsElsewhere {
					cur.Transitions = map[graph.NodeID]*graph.TimestampSet{smallest.ID(): graph.NewTimestampSet()}
				}
				continue
			}

			for toID := range cur.Transitions {
				adjacent := g.Node(toID)
				if adjacent == nil {
					continue
				}
				if adjacent.Index > highestIndex {
					mergeTransitionInto(smallest, toID, cur.Transitions[toID])
				} else {
					worklist = append(worklist, adjacent)
				}
			}
			cur.Indegree = 0
			cur.Transitions = map[graph.NodeID]*graph.TimestampSet{smallest.ID(): graph.NewTimestampSet()}
		}

		for toID := range smallest.Transitions {
			if target := g.Node(toID); target != nil && target.Indegree == 0 {
				delete(smallest.Transitions, toID)
			}
		}
	}

	deleted := 0
	return g.DeleteWhere(func(n *graph.Node) bool {
		if n.Indegree == 0 && n.ID() != start.ID() {
			deleted++
			return true
		}
		return false
	}), deleted
}

// mergeInto rewrites n's transitions: edges ending in smallest become a
// self-loop on smallest, edges to a node with index greater than
// highestIndex move to smallest, everything else is dropped. n itself is
// then depreciated into a tombstone redirect pointing at smallest.
func mergeInto(g *graph.Graph, n, smallest *graph.Node, highestIndex int) {
	for toID, ts := range n.Transitions {
		target := g.Node(toID)
		if target == nil {
			continue
		}
		switch {
		case target.ID() == smallest.ID():
			if existing, ok := smallest.Transitions[smallest.ID()]; ok {
				existing.Merge(ts)
				smallest.Indegree--
			} else {
				self := ts.Clone()
				smallest.Transitions[smallest.ID()] = self
			}
		case target.Index > highestIndex:
			mergeTransitionInto(smallest, toID, ts)
		}
	}

	n.Indegree = 0
	n.Transitions = map[graph.NodeID]*graph.TimestampSet{smallest.ID(): graph.NewTimestampSet()}
}

func mergeTransitionInto(dst *graph.Node, toID graph.NodeID, ts *graph.TimestampSet) {
	if existing, ok := dst.Transitions[toID]; ok {
		existing.Merge(ts)
	} else {
		dst.Transitions[toID] = ts.Clone()
	}
}
