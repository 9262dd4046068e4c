// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package print

import (
	"fmt"
	"strings"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
)

// PrintTimes narrates the earliest-timeline walk from the start node:
// for each visited node, its snapshot, absolute start time, any
// self-loop cycle times, and the single transition time to the next
// node. Returns a fixed diagnostic when the graph has no start node or
// the start has no outgoing transitions.
func PrintTimes(g *graph.Graph) string {
	start := g.StartNode()
	if start == nil {
		return "No States exist!"
	}
	if len(start.Transitions) == 0 {
		return "No Circuits exist!"
	}

	var sb strings.Builder
	current := start
	var lastTimestamp uint64

	for current != nil {
		fmt.Fprintf(&sb, "State %d", current.Index)
		if current.Value.LeadingIsInput() {
			sb.WriteString(" (Input)")
		} else if len(current.Value) > 0 {
			sb.WriteString(" (Output)")
		}
		sb.WriteString(":\n{")
		for _, v := range current.Value {
			sb.WriteString("\n\t")
			sb.WriteString(v.String())
		}
		sb.WriteString("\n}\n")

		fmt.Fprintf(&sb, "Absolute Start Time: %ss\n", formatSeconds(lastTimestamp))

		if len(current.Transitions) == 0 {
			return sb.String()
		}

		if loop, ok := current.Transitions[current.ID()]; ok && loop.Len() > 0 {
			var cycle strings.Builder
			cycle.WriteString("Cycle Times: ( ")
			for _, ts := range loop.All() {
				relTime := ts - lastTimestamp
				fmt.Fprintf(&cycle, "%ss, ", formatSeconds(relTime))
				lastTimestamp = ts
			}
			sb.WriteString(strings.TrimSuffix(cycle.String(), ", "))
			sb.WriteString(" )\n")
		}

		next, t, ok := nextDistinctSuccessor(g, current, lastTimestamp)
		if !ok {
			return sb.String()
		}
		relTime := t - lastTimestamp
		fmt.Fprintf(&sb, "Transition to next: %ss\n\n\n", formatSeconds(relTime))
		lastTimestamp = t
		current = next
	}

	return sb.String()
}

// nextDistinctSuccessor returns the successor, other than n itself,
// reached by the smallest timestamp strictly greater than after, and
// that timestamp.
func nextDistinctSuccessor(g *graph.Graph, n *graph.Node, after uint64) (*graph.Node, uint64, bool) {
	var best *graph.Node
	var bestTime uint64
	for toID, ts := range n.Transitions {
		target := g.Node(toID)
		if toID == n.ID() || target == nil {
			continue
		}
		for _, t := range ts.All() {
			if t > after {
				if best == nil || t < bestTime {
					best, bestTime = target, t
				}
				break
			}
		}
	}
	return best, bestTime, best != nil
}
