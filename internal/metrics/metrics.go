// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics exposes the reconstruction pipeline's size and
// reducer activity as Prometheus metrics. Purely observational: nothing
// here is read back by the core, and the listener this package starts
// is optional and outside the core's single-threaded data structures
// (spec §5).
package metrics

import (
	"net/http"

	"github.com/ClusterCockpit/fsmreconstruct/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	States = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fsm_states",
		Help: "Number of states in the current graph.",
	})

	Transitions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fsm_transitions",
		Help: "Number of distinct transitions in the current graph.",
	})

	ReducerStatesDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_reducer_states_deleted_total",
		Help: "States removed by a reducer pass, by pass name.",
	}, []string{"pass"})
)

// ObserveGraphSize records the current node/transition counts.
func ObserveGraphSize(states, transitions int) {
	States.Set(float64(states))
	Transitions.Set(float64(transitions))
}

// ObserveReducerPass records how many states a named reducer pass
// deleted.
func ObserveReducerPass(pass string, deleted int) {
	ReducerStatesDeleted.WithLabelValues(pass).Add(float64(deleted))
}

// Serve starts the metrics HTTP listener on addr. It blocks until the
// listener fails and logs that failure; callers typically invoke it in
// its own goroutine.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Infof("metrics: listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("metrics: listener stopped: %v", err)
	}
}
