// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidTrace(t *testing.T) {
	doc := `[
		{"timestamp": 1, "isInput": false, "changes": [{"participantId": 0, "bytes": "QQ=="}]},
		{"timestamp": 2, "isInput": false, "changes": [{"participantId": 0, "bytes": "Qg=="}]}
	]`

	frames, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, uint64(1), frames[0].Timestamp)
	assert.False(t, frames[0].IsInput)
	require.Len(t, frames[0].Changes, 1)
	assert.Equal(t, []byte("A"), frames[0].Changes[0].Bytes)
	assert.Equal(t, []byte("B"), frames[1].Changes[0].Bytes)
}

func TestDecodeRejectsMissingRequiredField(t *testing.T) {
	doc := `[{"timestamp": 1, "changes": []}]`

	_, err := Decode(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestDecodeEmptyTraceYieldsNoFrames(t *testing.T) {
	frames, err := Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, frames)
}
