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

// PrintRightLinearGrammar renders one production line per state:
// "qA -> <label> qB | <label> qC | …". When transitionPrefix is empty
// the label is the raw timestamp count on that edge (the source's
// intended ternary semantics, preserved verbatim here rather than its
// incidental operator-precedence reading); otherwise the label is
// transitionPrefix followed by a traversal-order counter. A target with
// no further outgoing transitions (or equal to finalIndex when a final
// state is named) omits the trailing state name, since it marks
// acceptance.
func PrintRightLinearGrammar(g *graph.Graph, startIndex, finalIndex int, statePrefix, transitionPrefix string, printPercentualDiff bool) string {
	sorted := sortedByIndex(g)
	printAll := startIndex >= finalIndex

	startI := 0
	if !printAll {
		found := -1
		for i, n := range sorted {
			if n.Index == startIndex {
				found = i
				break
			}
		}
		if found == -1 {
			return ""
		}
		startI = found
	}

	var sb strings.Builder
	count := 0

	for i := startI; i < len(sorted); i++ {
		n := sorted[i]
		if !printAll && n.Index >= finalIndex {
			break
		}

		var line strings.Builder
		fmt.Fprintf(&line, "%s%d ->", statePrefix, n.Index)

		targets := make([]int, 0, len(n.Transitions))
		byIndex := make(map[int]graph.NodeID, len(n.Transitions))
		for toID := range n.Transitions {
			if target := g.Node(toID); target != nil {
				targets = append(targets, target.Index)
				byIndex[target.Index] = toID
			}
		}
		sort.Ints(targets)

		for _, nextIndex := range targets {
			toID := byIndex[nextIndex]
			ts := n.Transitions[toID]
			adjacent := g.Node(toID)

			var label string
			switch {
			case printPercentualDiff:
				label = percentualDiffLabel(ts)
			case transitionPrefix == "":
				label = strconv.Itoa(ts.Len())
			default:
				label = fmt.Sprintf("%s%d", transitionPrefix, count)
				count++
			}

			line.WriteString(" " + label)

			hasMore := len(adjacent.Transitions) > 0 && (printAll || adjacent.Index != finalIndex)
			if hasMore {
				fmt.Fprintf(&line, " %s%d", statePrefix, adjacent.Index)
			}
			line.WriteString(" |")
		}

		sb.WriteString(strings.TrimSuffix(line.String(), " |"))
		sb.WriteString("\n")
	}

	return sb.String()
}
