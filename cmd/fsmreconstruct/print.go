// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/ClusterCockpit/fsmreconstruct/internal/config"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/print"
	"github.com/ClusterCockpit/fsmreconstruct/internal/rendercache"
	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
)

func runPrint(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var format, passes, prefix, transitionPrefix string
	var start, final, precision int
	var stateIndex int
	var percentualDiff bool
	fs.StringVar(&format, "format", "times", "One or more of: automata, grammar, regular, times, state, transitions (comma-separated)")
	fs.StringVar(&passes, "passes", "", "Comma-separated reducer passes to apply before printing")
	fs.StringVar(&prefix, "prefix", "q", "State name prefix for the automaton/grammar formats")
	fs.StringVar(&transitionPrefix, "transition-prefix", "", "Transition label prefix for the grammar/regular formats; in the grammar format, empty means raw timestamp counts")
	fs.IntVar(&start, "start", 0, "Start state index (automaton/grammar/regular formats)")
	fs.IntVar(&final, "final", 0, "Final state index; start >= final prints the whole graph")
	fs.IntVar(&precision, "precision", 3, "Seconds precision for the automata format")
	fs.IntVar(&stateIndex, "state", 0, "State index (state/transitions formats)")
	fs.BoolVar(&percentualDiff, "percentual-diff", false, "Use percentage timing deviation instead of synthetic labels (grammar/regular formats)")
	fs.Parse(args)

	g := buildGraphFromTrace()
	g = applyPasses(g, passes)

	cache := rendercache.New(config.Keys.RenderCacheEntries)

	for _, f := range strings.Split(format, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		key := fmt.Sprintf("%s|%d|%d|%s|%s|%d|%d|%v", f, start, final, prefix, transitionPrefix, precision, stateIndex, percentualDiff)
		if out, ok := cache.Get(key); ok {
			fmt.Print(out)
			continue
		}

		out := renderFormat(g, f, start, final, prefix, transitionPrefix, precision, stateIndex, percentualDiff)
		cache.Put(key, out)
		fmt.Print(out)
		fmt.Println()
	}
}

func renderFormat(g *graph.Graph, format string, start, final int, prefix, transitionPrefix string, precision, stateIndex int, percentualDiff bool) string {
	switch format {
	case "automata":
		return print.PrintTimeAutomata(g, start, final, prefix, precision)
	case "grammar":
		return print.PrintRightLinearGrammar(g, start, final, prefix, transitionPrefix, percentualDiff)
	case "regular":
		return print.PrintRegularAutomota(g, start, final, prefix, transitionPrefix, percentualDiff)
	case "times":
		return print.PrintTimes(g)
	case "state":
		return print.GetStateValues(g, stateIndex)
	case "transitions":
		return print.GetTransitionTimes(g, stateIndex)
	default:
		log.Fatalf("fsmreconstruct: unknown print format %q", format)
		return ""
	}
}
