// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package registry interns observed participant values and tracks the
// current per-channel state of a trace, keeping one sub-registry per
// polarity because input and output frames occupy disjoint channel
// spaces.
package registry

import (
	"github.com/ClusterCockpit/fsmreconstruct/internal/fsm/participant"
)

// Options toggles the registry's interning and snapshotting behavior,
// sourced from internal/config.
type Options struct {
	// CombineStates: equal snapshots share node identity. If false, the
	// builder must distinguish every observation with a unique sentinel
	// participant (the builder's responsibility, not the registry's).
	CombineStates bool
	// OnlyOutput: input frames are silently dropped before reaching the
	// builder.
	OnlyOutput bool
	// CombinedStates: a snapshot concatenates input and output
	// canonical lists into one full-system snapshot; if false,
	// snapshots alternate polarity and RemoveInputStates is available.
	CombinedStates bool
	// CountDuplicates: diagnostic-only tracking of raw occurrences.
	CountDuplicates bool
}

// Change is one observed byte-vector update on a single channel.
type Change struct {
	ParticipantID uint16
	Bytes         []byte
}

// subRegistry holds the interning state for one polarity.
type subRegistry struct {
	current []*participant.Value // last-observed value per channel index
	values  []map[string]*participant.Value

	// states/duplicateCount realize the COUNT_DUPLICATES diagnostic:
	// every distinct full snapshot ever produced for this polarity, and
	// how many times FindCurrentValues returned a repeat of one.
	states         [][]*participant.Value
	duplicateCount uint
}

func (r *subRegistry) participantCount() int { return len(r.current) }

// Registry is the explicit (non-singleton) construction sanctioned by
// the redesign: callers own a *Registry and pass it to the builder,
// rather than reaching through a process-wide instance as the original
// source did.
type Registry struct {
	opts    Options
	input   subRegistry
	output  subRegistry
}

// New returns an empty registry configured by opts.
func New(opts Options) *Registry {
	return &Registry{opts: opts}
}

// channelIndex derives the channel slot for a participant id via
// two's-complement negation, reflecting the source's id-to-index
// folding (`idx = 0 - change.participantId`).
func channelIndex(id uint16) uint16 {
	return -id
}

// sub returns the sub-registry for the given polarity.
func (r *Registry) sub(isInput bool) *subRegistry {
	if isInput {
		return &r.input
	}
	return &r.output
}

// ApplyChanges feeds one frame's changes into the registry for the
// given polarity. On the first call for a polarity it allocates
// `current`, growing to accommodate the largest channel index seen; on
// subsequent calls it overwrites bytes in place, growing `current` again
// when a change names a channel index beyond it.
func (r *Registry) ApplyChanges(isInput bool, changes []Change) {
	sr := r.sub(isInput)

	if sr.participantCount() == 0 {
		count := len(changes)
		current := make([]*participant.Value, count)
		values := make([]map[string]*participant.Value, count)
		for i := range values {
			values[i] = make(map[string]*participant.Value)
		}

		for _, ch := range changes {
			idx := int(channelIndex(ch.ParticipantID))
			if idx >= len(current) {
				grownCurrent := make([]*participant.Value, idx+1)
				copy(grownCurrent, current)
				current = grownCurrent

				grownValues := make([]map[string]*participant.Value, idx+1)
				copy(grownValues, values)
				for i := len(values); i < len(grownValues); i++ {
					grownValues[i] = make(map[string]*participant.Value)
				}
				values = grownValues
			}
			current[idx] = participant.New(ch.ParticipantID, ch.Bytes, isInput)
		}

		sr.current = current
		sr.values = values
		return
	}

	for _, ch := range changes {
		idx := int(channelIndex(ch.ParticipantID))
		if idx >= len(sr.current) {
			grownCurrent := make([]*participant.Value, idx+1)
			copy(grownCurrent, sr.current)
			sr.current = grownCurrent
			for len(sr.values) < idx+1 {
				sr.values = append(sr.values, make(map[string]*participant.Value))
			}
		}
		sr.current[idx] = participant.New(ch.ParticipantID, ch.Bytes, isInput)
	}
}

// FindCurrentValues interns the current byte vector of every channel of
// the given polarity and returns the canonical (interned) snapshot for
// that polarity.
func (r *Registry) FindCurrentValues(isInput bool) []*participant.Value {
	sr := r.sub(isInput)

	if r.opts.CountDuplicates {
		for _, state := range sr.states {
			if snapshotEqual(sr.current, state) {
				sr.duplicateCount++
				return state
			}
		}
	}

	newState := make([]*participant.Value, 0, sr.participantCount())
	for i, cur := range sr.current {
		key := valueKey(cur)
		if existing, ok := sr.values[i][key]; ok {
			newState = append(newState, existing)
			continue
		}
		sr.values[i][key] = cur
		newState = append(newState, cur)
	}

	if r.opts.CountDuplicates {
		sr.states = append(sr.states, newState)
	}

	return newState
}

func snapshotEqual(a, b []*participant.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func valueKey(v *participant.Value) string {
	return string(v.Bytes())
}

// Snapshot applies changes for the given polarity and returns the
// canonical snapshot(s) to feed into the builder, honoring OnlyOutput
// and CombinedStates. It returns nil if OnlyOutput drops an input frame,
// or if CombinedStates is set but one polarity has not yet been
// observed at all.
func (r *Registry) Snapshot(isInput bool, changes []Change) []*participant.Value {
	if r.opts.OnlyOutput && isInput {
		return nil
	}

	r.ApplyChanges(isInput, changes)

	if r.opts.CombinedStates {
		if r.input.participantCount() == 0 || r.output.participantCount() == 0 {
			return nil
		}
		values := r.FindCurrentValues(true)
		outputValues := r.FindCurrentValues(false)
		combined := make([]*participant.Value, 0, len(values)+len(outputValues))
		combined = append(combined, values...)
		combined = append(combined, outputValues...)
		return combined
	}

	return r.FindCurrentValues(isInput)
}

// InputParticipantCount reports how many input channels have been seen.
func (r *Registry) InputParticipantCount() int { return r.input.participantCount() }

// OutputParticipantCount reports how many output channels have been seen.
func (r *Registry) OutputParticipantCount() int { return r.output.participantCount() }

// NumberOfDuplicates reports how many times FindCurrentValues returned a
// repeat full snapshot, when CountDuplicates is enabled.
func (r *Registry) NumberOfDuplicates() uint {
	return r.input.duplicateCount + r.output.duplicateCount
}

// UniqueInputStates reports the number of distinct input snapshots seen,
// when CountDuplicates is enabled.
func (r *Registry) UniqueInputStates() int { return len(r.input.states) }

// UniqueOutputStates reports the number of distinct output snapshots
// seen, when CountDuplicates is enabled.
func (r *Registry) UniqueOutputStates() int { return len(r.output.states) }
