// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import (
	"flag"
	"fmt"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/reduce"
	"github.com/ClusterCockpit/fsmreconstruct/internal/query"
	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
)

func runSelect(args []string) {
	fs := flag.NewFlagSet("select", flag.ExitOnError)
	var exprSource, passes string
	var cut bool
	var final int
	fs.StringVar(&exprSource, "expr", "", "expr-lang predicate over a state, e.g. 'Participant(3) != nil && Participant(3)[0] == 1'")
	fs.StringVar(&passes, "passes", "", "Comma-separated reducer passes to apply before selecting")
	fs.BoolVar(&cut, "cut", false, "Restrict the graph to the subgraph rooted at the matched state")
	fs.IntVar(&final, "final", 0, "Final state index to stop CutToPart at, when -cut is set")
	fs.Parse(args)

	if exprSource == "" {
		log.Fatal("fsmreconstruct select: -expr is required")
	}

	predicate, err := query.Compile(exprSource)
	if err != nil {
		log.Fatalf("fsmreconstruct select: %v", err)
	}

	g := buildGraphFromTrace()
	g = applyPasses(g, passes)

	idx, ok, err := query.FindIndex(g, predicate)
	if err != nil {
		log.Fatalf("fsmreconstruct select: %v", err)
	}
	if !ok {
		fmt.Println("no state matches the predicate")
		return
	}

	fmt.Printf("matched state: %d\n", idx)

	if cut {
		cutGraph := reduce.CutToPart(g, idx, final, false, nil)
		if cutGraph == nil {
			log.Fatalf("fsmreconstruct select: CutToPart produced no graph for start index %d", idx)
		}
		fmt.Printf("cut to %d states\n", cutGraph.Len())
	}
}
