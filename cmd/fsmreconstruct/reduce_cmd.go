// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import (
	"flag"
	"fmt"

	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
)

func runReduce(args []string) {
	fs := flag.NewFlagSet("reduce", flag.ExitOnError)
	var passes string
	fs.StringVar(&passes, "passes", "", "Comma-separated reducer passes to apply, in order (e.g. combine-sequences,combine-scc,merge-circuits)")
	fs.Parse(args)

	g := buildGraphFromTrace()
	before := g.Len()
	g = applyPasses(g, passes)

	log.Infof("fsmreconstruct reduce: %d -> %d states", before, g.Len())
	fmt.Printf("states before: %d\nstates after: %d\ntransitions: %d\n", before, g.Len(), countTransitions(g))
}
