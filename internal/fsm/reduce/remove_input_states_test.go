// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reduce

import (
	"testing"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/builder"
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/registry"
	"github.com/stretchr/testify/assert"
)

func TestRemoveInputStatesSkipsInputNodes(t *testing.T) {
	reg := registry.New(registry.Options{CombineStates: true})
	frames := []builder.Frame{
		{Timestamp: 1, IsInput: false, Changes: []registry.Change{change(0, 'A')}},
		{Timestamp: 2, IsInput: true, Changes: []registry.Change{change(0, 'X')}},
		{Timestamp: 3, IsInput: false, Changes: []registry.Change{change(0, 'B')}},
		{Timestamp: 4, IsInput: true, Changes: []registry.Change{change(0, 'Y')}},
		{Timestamp: 5, IsInput: false, Changes: []registry.Change{change(0, 'C')}},
	}
	g := builder.Build(frames, reg, builder.Options{CombineStates: true})

	out := RemoveInputStates(g)

	for _, n := range out.Nodes() {
		assert.False(t, n.Value.LeadingIsInput(), "every surviving node is output-polarity")
	}
	assert.Equal(t, 3, out.Len())
}
