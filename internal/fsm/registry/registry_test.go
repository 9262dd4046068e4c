// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyChangesAllocatesAndGrows(t *testing.T) {
	r := New(Options{})
	r.ApplyChanges(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	assert.Equal(t, 1, r.OutputParticipantCount())

	// channelIndex(2) > channelIndex(0) under two's-complement folding,
	// forcing current[] to grow.
	r.ApplyChanges(false, []Change{
		{ParticipantID: 0, Bytes: []byte{2}},
		{ParticipantID: 2, Bytes: []byte{9}},
	})
	assert.GreaterOrEqual(t, r.OutputParticipantCount(), 1)
}

func TestFindCurrentValuesInterns(t *testing.T) {
	r := New(Options{})
	r.ApplyChanges(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	a := r.FindCurrentValues(false)

	r.ApplyChanges(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	b := r.FindCurrentValues(false)

	assert.Same(t, a[0], b[0], "identical bytes intern to the same handle")
}

func TestFindCurrentValuesDistinctBytes(t *testing.T) {
	r := New(Options{})
	r.ApplyChanges(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	a := r.FindCurrentValues(false)

	r.ApplyChanges(false, []Change{{ParticipantID: 0, Bytes: []byte{2}}})
	b := r.FindCurrentValues(false)

	assert.NotSame(t, a[0], b[0])
}

func TestSnapshotOnlyOutputDropsInput(t *testing.T) {
	r := New(Options{OnlyOutput: true})
	snap := r.Snapshot(true, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	assert.Nil(t, snap)
}

func TestSnapshotCombinedStatesWaitsForBothPolarities(t *testing.T) {
	r := New(Options{CombinedStates: true})
	snap := r.Snapshot(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	assert.Nil(t, snap, "no input polarity seen yet")

	snap = r.Snapshot(true, []Change{{ParticipantID: 0, Bytes: []byte{9}}})
	assert.Len(t, snap, 2, "now both polarities contribute to one combined snapshot")
}

func TestSnapshotUncombinedAlternatesPolarity(t *testing.T) {
	r := New(Options{})
	out := r.Snapshot(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	in := r.Snapshot(true, []Change{{ParticipantID: 0, Bytes: []byte{2}}})
	assert.Len(t, out, 1)
	assert.Len(t, in, 1)
	assert.True(t, in[0].IsInput())
	assert.False(t, out[0].IsInput())
}

func TestCountDuplicatesTracksRepeats(t *testing.T) {
	r := New(Options{CountDuplicates: true})
	r.Snapshot(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})
	r.Snapshot(false, []Change{{ParticipantID: 0, Bytes: []byte{2}}})
	r.Snapshot(false, []Change{{ParticipantID: 0, Bytes: []byte{1}}})

	assert.Equal(t, uint(1), r.NumberOfDuplicates())
	assert.Equal(t, 2, r.UniqueOutputStates())
}

func TestParticipantCountsStartAtZero(t *testing.T) {
	r := New(Options{})
	assert.Equal(t, 0, r.InputParticipantCount())
	assert.Equal(t, 0, r.OutputParticipantCount())
}
