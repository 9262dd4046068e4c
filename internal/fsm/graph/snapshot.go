// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graph

import (
	"strconv"
	"strings"

	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/participant"
)

// Snapshot is an ordered sequence of participant values describing the
// full observed state of the system at one instant.
type Snapshot []*participant.Value

// Cmp orders snapshots lexicographically, element-wise; a snapshot that
// is a strict prefix of another sorts first.
func (s Snapshot) Cmp(other Snapshot) int {
	n := len(s)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c := s[i].Cmp(other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(s) < len(other):
		return -1
	case len(s) > len(other):
		return 1
	default:
		return 0
	}
}

// Key renders a structural content key used to dedup nodes at insertion
// time. Because participant values are interned, content equality and
// pointer equality coincide; the string key is simply the cheapest way
// to compare a whole snapshot as a map key.
func (s Snapshot) Key() string {
	var sb strings.Builder
	for _, v := range s {
		sb.WriteString(strconv.FormatUint(uint64(v.ID()), 10))
		sb.WriteByte(':')
		if v.IsInput() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		sb.WriteByte(':')
		sb.Write(v.Bytes())
		sb.WriteByte(';')
	}
	return sb.String()
}

// LeadingIsInput reports whether the first participant value in the
// snapshot is an input value. Used by RemoveInputStates and the
// polarity-tagged printers; only meaningful when snapshots are not
// combined (CombinedStates == false).
func (s Snapshot) LeadingIsInput() bool {
	return len(s) > 0 && s[0].IsInput()
}
