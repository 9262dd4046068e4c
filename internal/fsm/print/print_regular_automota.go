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

// PrintRegularAutomota renders the same six-section shape as
// PrintTimeAutomata, but alphabet symbols are synthetic traversal-order
// labels ("t0", "t1", ...), or (if printPercentualDiff) the maximum
// percentage deviation of an edge's min/max timestamp from its mean.
func PrintRegularAutomota(g *graph.Graph, startIndex, finalIndex int, statePrefix, transitionPrefix string, printPercentualDiff bool) string {
	sorted := sortedByIndex(g)
	if len(sorted) == 0 {
		return ""
	}
	printAll := startIndex >= finalIndex

	states := make(map[string]bool)
	alphabet := make(map[string]bool)
	var transitions strings.Builder

	initialIndex := startIndex
	if printAll {
		if start := g.StartNode(); start != nil {
			initialIndex = start.Index
		}
	}
	initial := fmt.Sprintf("#initial\n%s%d\n", statePrefix, initialIndex)

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

	accepting := make(map[string]bool)
	count := 0

	for i := startI; i < len(sorted); i++ {
		n := sorted[i]
		if !printAll && n.Index > finalIndex {
			break
		}

		stateName := fmt.Sprintf("%s%d", statePrefix, n.Index)
		states[stateName] = true

		if len(n.Transitions) == 0 || (!printAll && n.Index == finalIndex) {
			accepting[stateName] = true
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

		for _, nextIndex := range targets {
			if !printAll && (nextIndex < startIndex || nextIndex > finalIndex) {
				continue
			}
			toID := byIndex[nextIndex]
			ts := n.Transitions[toID]

			var label string
			if printPercentualDiff {
				label = percentualDiffLabel(ts)
			} else {
				label = fmt.Sprintf("%s%d", transitionPrefix, count)
				count++
			}
			alphabet[label] = true

			fmt.Fprintf(&transitions, "%s:%s>%s%d\n", stateName, label, statePrefix, nextIndex)
		}

		if printAll {
			continue
		}
	}

	var acceptingSB strings.Builder
	acceptingSB.WriteString(joinSorted(accepting))

	return "#states\n" + joinSorted(states) +
		initial +
		"#accepting\n" + acceptingSB.String() +
		"#alphabet\n" + joinSorted(alphabet) +
		"#transitions\n" + transitions.String()
}

func percentualDiffLabel(ts *graph.TimestampSet) string {
	all := ts.All()
	if len(all) <= 1 {
		return "0%"
	}
	var sum uint64
	for _, t := range all {
		sum += t
	}
	mean := float64(sum) / float64(len(all))
	minV := float64(all[0])
	maxV := float64(all[len(all)-1])
	minFraction := mean/minV - 1.0
	maxFraction := maxV/mean - 1.0
	worst := minFraction
	if maxFraction > worst {
		worst = maxFraction
	}
	return strconv.FormatFloat(worst*100.0, 'f', 2, 64) + "%"
}
