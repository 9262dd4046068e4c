// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package print renders the six textual views of a reconstructed state
// graph. Every function here is a pure read: none mutate the graph.
package print

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
)

func findByIndex(g *graph.Graph, index int) *graph.Node {
	for _, n := range g.Nodes() {
		if n.Index == index {
			return n
		}
	}
	return nil
}

func sortedByIndex(g *graph.Graph) []*graph.Node {
	return g.NodesSortedByIndex()
}

// GetStateValues renders the snapshot and degree counts of the node at
// stateIndex, or "" if no such node exists.
func GetStateValues(g *graph.Graph, stateIndex int) string {
	n := findByIndex(g, stateIndex)
	if n == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "State %d", n.Index)
	if n.Value.LeadingIsInput() {
		sb.WriteString(" (Input)")
	} else if len(n.Value) > 0 {
		sb.WriteString(" (Output)")
	}
	sb.WriteString(":\n{")
	for _, v := range n.Value {
		sb.WriteString("\n\t")
		sb.WriteString(v.String())
	}
	sb.WriteString("\n}\n")
	fmt.Fprintf(&sb, "Input Transitions:\t%d\n", n.Indegree)
	fmt.Fprintf(&sb, "Output Transitions:\t%d", len(n.Transitions))
	return sb.String()
}

// GetTransitionTimes renders every outgoing transition of stateIndex and
// its observed timestamps, converted to seconds, or "" if no such node
// exists.
func GetTransitionTimes(g *graph.Graph, stateIndex int) string {
	n := findByIndex(g, stateIndex)
	if n == nil {
		return ""
	}

	targets := make([]int, 0, len(n.Transitions))
	byIndex := make(map[int]graph.NodeID, len(n.Transitions))
	for toID := range n.Transitions {
		if target := g.Node(toID); target != nil {
			targets = append(targets, target.Index)
			byIndex[target.Index] = toID
		}
	}
	sort.Ints(targets)

	var sb strings.Builder
	fmt.Fprintf(&sb, "State %d{", n.Index)
	for _, idx := range targets {
		toID := byIndex[idx]
		fmt.Fprintf(&sb, "\n\t%d:\t{ ", idx)
		for _, ts := range n.Transitions[toID].All() {
			fmt.Fprintf(&sb, "%ss ", formatSeconds(ts))
		}
		sb.WriteString("}")
	}
	sb.WriteString("\n}")
	return sb.String()
}

func formatSeconds(microseconds uint64) string {
	return strconv.FormatFloat(float64(microseconds)*1e-6, 'f', -1, 32)
}
