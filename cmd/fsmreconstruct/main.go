// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fsmreconstruct parses a trace, reconstructs and simplifies its
// state graph, and renders one of the textual automaton formats.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ClusterCockpit/fsmreconstruct/internal/config"
	"github.com/ClusterCockpit/fsmreconstruct/internal/metrics"
	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
	"github.com/joho/godotenv"
)

var (
	flagConfigFile, flagTraceFile string
	flagLogLevel                  string
)

func main() {
	godotenv.Load()

	fs := flag.NewFlagSet("fsmreconstruct", flag.ExitOnError)
	fs.StringVar(&flagConfigFile, "config", "./config.json", "Path to config.json")
	fs.StringVar(&flagTraceFile, "trace", "", "Path to the trace JSON file")
	fs.StringVar(&flagLogLevel, "loglevel", "", "Override the configured log level")
	fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: fsmreconstruct -config <file> -trace <file> <build|reduce|print|select> [flags]")
		os.Exit(2)
	}

	config.Init(flagConfigFile)
	if flagLogLevel != "" {
		log.SetLogLevel(flagLogLevel)
	} else {
		log.SetLogLevel(config.Keys.LogLevel)
	}

	if config.Keys.MetricsAddr != "" {
		go metrics.Serve(config.Keys.MetricsAddr)
	}

	if flagTraceFile == "" {
		log.Fatal("fsmreconstruct: -trace is required")
	}

	switch subcommand, rest := args[0], args[1:]; subcommand {
	case "build":
		runBuild(rest)
	case "reduce":
		runReduce(rest)
	case "print":
		runPrint(rest)
	case "select":
		runSelect(rest)
	default:
		log.Fatalf("fsmreconstruct: unknown subcommand %q", subcommand)
	}
}
