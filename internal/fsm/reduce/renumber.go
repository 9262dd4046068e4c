// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import (
	"sort"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
)

// RenumberStates sorts the surviving nodes by their current Index and
// reassigns Index to a dense, zero-based rank. Purely cosmetic: it
// preserves every other invariant, and applying it twice in a row is
// identical to applying it once.
func RenumberStates(g *graph.Graph) {
	sorted := append([]*graph.Node(nil), g.Nodes()...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for i, n := range sorted {
		n.Index = i
	}
}
