// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package query compiles a boolean expr-lang/expr predicate over a
// state's participant values and resolves it to a starting index for
// reduce.CutToPart. This only *selects* an index; it never alters graph
// semantics (spec §4.F, Non-goals).
package query

import (
	"fmt"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/graph"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// env is the evaluation environment exposed to a predicate expression.
type env struct {
	// Participant looks up the byte vector observed for participant id
	// in the current state, or nil if that id was not present.
	Participant func(id int) []byte
	// Index is the current state's index.
	Index int
	// Input reports whether the current state's leading participant is
	// input-polarity.
	Input bool
}

// Predicate is a compiled boolean expression over a state's snapshot.
type Predicate struct {
	program *vm.Program
}

// Compile parses and type-checks expr as a boolean predicate, e.g.
// `Participant(3)[0] == 1` or `Index > 2 && !Input`.
func Compile(source string) (*Predicate, error) {
	program, err := expr.Compile(source, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("query: compiling predicate: %w", err)
	}
	return &Predicate{program: program}, nil
}

// Match evaluates the predicate against node.
func (p *Predicate) Match(node *graph.Node) (bool, error) {
	e := env{
		Participant: func(id int) []byte {
			for _, v := range node.Value {
				if int(v.ID()) == id {
					return v.Bytes()
				}
			}
			return nil
		},
		Index: node.Index,
		Input: node.Value.LeadingIsInput(),
	}

	out, err := expr.Run(p.program, e)
	if err != nil {
		return false, fmt.Errorf("query: evaluating predicate: %w", err)
	}
	return out.(bool), nil
}

// FindIndex returns the Index of the first node (in Index order) for
// which the predicate matches, or false if none match.
func FindIndex(g *graph.Graph, p *Predicate) (int, bool, error) {
	nodes := g.NodesSortedByIndex()
	for _, n := range nodes {
		ok, err := p.Match(n)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return n.Index, true, nil
		}
	}
	return 0, false, nil
}
