// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package print

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
)

// PrintTimeAutomata renders the six-section automaton text format
// (#states, #initial, #accepting, #alphabet, #transitions), walking the
// earliest-successor timeline between startIndex and finalIndex.
// Alphabet symbols are fixed-precision seconds ("0.123s"); transitions
// are "qA:0.123s>qB". If startIndex >= finalIndex the whole graph is
// walked to exhaustion instead of stopping at finalIndex.
func PrintTimeAutomata(g *graph.Graph, startIndex, finalIndex int, statePrefix string, precision int) string {
	sorted := sortedByIndex(g)
	if len(sorted) == 0 {
		return ""
	}
	printAll := startIndex >= finalIndex

	states := make(map[string]bool)
	alphabet := make(map[string]bool)
	var transitions strings.Builder

	initial := fmt.Sprintf("#initial\n%s%d\n", statePrefix, startIndex)

	current := g.StartNode()
	var startTime uint64

	if !printAll {
		start := findByIndex(g, startIndex)
		if start == nil {
			return ""
		}
		current = start

		for _, n := range sorted {
			if n.Index >= startIndex {
				break
			}
			if ts, ok := n.Transitions[current.ID()]; ok && ts.Len() > 0 {
				if latest := ts.Last(); latest > startTime {
					startTime = latest
				}
			}
		}
	}

	for {
		if printAll && len(current.Transitions) == 0 {
			break
		}
		if !printAll && (current.Index == finalIndex || len(current.Transitions) == 0) {
			break
		}

		stateName := fmt.Sprintf("%s%d", statePrefix, current.Index)
		states[stateName] = true

		next, t, ok := earliestSuccessorAfter(g, current, startTime)
		if !ok {
			break
		}

		diff := float64(t-startTime) * 1e-6
		label := strconv.FormatFloat(diff, 'f', precision, 64) + "s"
		alphabet[label] = true

		fmt.Fprintf(&transitions, "%s:%s>%s%d\n", stateName, label, statePrefix, next.Index)

		current = next
		startTime = t
	}

	accepting := ""
	isAccepting := printAll && current.ID() == sorted[len(sorted)-1].ID() ||
		(!printAll && current.Index == finalIndex)
	if isAccepting {
		accepting = fmt.Sprintf("%s%d\n", statePrefix, current.Index)
	}
	states[fmt.Sprintf("%s%d", statePrefix, current.Index)] = true

	return "#states\n" + joinSorted(states) +
		initial +
		"#accepting\n" + accepting +
		"#alphabet\n" + joinSorted(alphabet) +
		"#transitions\n" + transitions.String()
}

func joinSorted(set map[string]bool) string {
	items := make([]string, 0, len(set))
	for k := range set {
		items = append(items, k)
	}
	sort.Strings(items)
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}
