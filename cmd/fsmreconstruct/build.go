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

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	fs.Parse(args)

	g := buildGraphFromTrace()
	log.Infof("fsmreconstruct build: %d states, %d transitions", g.Len(), countTransitions(g))
	fmt.Printf("states: %d\ntransitions: %d\n", g.Len(), countTransitions(g))
}
