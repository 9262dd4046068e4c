// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package participant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmpPolarity(t *testing.T) {
	in := New(5, []byte{1}, true)
	out := New(5, []byte{1}, false)
	assert.Negative(t, in.Cmp(out), "input values sort before output values")
	assert.Positive(t, out.Cmp(in))
}

func TestCmpID(t *testing.T) {
	a := New(1, []byte{1}, false)
	b := New(2, []byte{1}, false)
	assert.Negative(t, a.Cmp(b))
}

func TestCmpByteCount(t *testing.T) {
	short := New(1, []byte{1}, false)
	long := New(1, []byte{1, 2}, false)
	assert.Negative(t, short.Cmp(long))
}

func TestCmpBytesLexicographic(t *testing.T) {
	a := New(1, []byte{1, 2}, false)
	b := New(1, []byte{1, 3}, false)
	assert.Negative(t, a.Cmp(b))
}

func TestEqual(t *testing.T) {
	a := New(3, []byte{9, 9}, true)
	b := New(3, []byte{9, 9}, true)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))
}

func TestString(t *testing.T) {
	v := New(7, []byte{1, 2, 3}, false)
	assert.Equal(t, "7:\t( 1, 2, 3 )", v.String())
}

func TestStringEmptyBytes(t *testing.T) {
	v := New(7, nil, false)
	assert.Equal(t, "7:\t(  )", v.String())
}

func TestNewCopiesBytes(t *testing.T) {
	raw := []byte{1, 2, 3}
	v := New(1, raw, false)
	raw[0] = 99
	assert.Equal(t, byte(1), v.Bytes()[0], "Value must own its bytes")
}
