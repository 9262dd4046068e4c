// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestampSetOrdersAndDedups(t *testing.T) {
	s := NewTimestampSet(5, 1, 3, 1, 5)
	assert.Equal(t, []uint64{1, 3, 5}, s.All())
	assert.Equal(t, 3, s.Len())
}

func TestTimestampSetFirstLast(t *testing.T) {
	s := NewTimestampSet(10, 2, 7)
	assert.Equal(t, uint64(2), s.First())
	assert.Equal(t, uint64(10), s.Last())
}

func TestTimestampSetEmpty(t *testing.T) {
	var s TimestampSet
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, uint64(0), s.First())
	assert.Equal(t, uint64(0), s.Last())
}

func TestTimestampSetMerge(t *testing.T) {
	a := NewTimestampSet(1, 2)
	b := NewTimestampSet(2, 3)
	a.Merge(b)
	assert.Equal(t, []uint64{1, 2, 3}, a.All())
}

func TestTimestampSetClone(t *testing.T) {
	a := NewTimestampSet(1, 2)
	b := a.Clone()
	b.Insert(3)
	assert.Equal(t, []uint64{1, 2}, a.All())
	assert.Equal(t, []uint64{1, 2, 3}, b.All())
}
