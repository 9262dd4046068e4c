// Copyright (C) 2022 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tracegen synthesizes a trace JSON file suitable for
// smoke-testing fsmreconstruct, cycling a handful of participants
// through a bounded set of byte values.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
)

type change struct {
	ParticipantID uint16 `json:"participantId"`
	Bytes         string `json:"bytes"`
}

type frame struct {
	Timestamp uint64   `json:"timestamp"`
	IsInput   bool     `json:"isInput"`
	Changes   []change `json:"changes"`
}

func main() {
	var outPath string
	var frameCount, participantCount, valueCount int
	var seed int64
	var alternatePolarity bool

	flag.StringVar(&outPath, "out", "trace.json", "Path to write the generated trace JSON to")
	flag.IntVar(&frameCount, "frames", 20, "Number of frames to generate")
	flag.IntVar(&participantCount, "participants", 3, "Number of distinct participant channels")
	flag.IntVar(&valueCount, "values", 4, "Number of distinct single-byte values cycled per participant")
	flag.Int64Var(&seed, "seed", 1, "Random seed, for reproducible traces")
	flag.BoolVar(&alternatePolarity, "alternate-polarity", false, "Alternate isInput between consecutive frames")
	flag.Parse()

	if frameCount <= 0 || participantCount <= 0 || valueCount <= 0 {
		log.Fatal("tracegen: frames, participants, and values must all be positive")
	}

	frames := generate(seed, frameCount, participantCount, valueCount, alternatePolarity)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("tracegen: creating %s: %v", outPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(frames); err != nil {
		log.Fatalf("tracegen: writing %s: %v", outPath, err)
	}

	fmt.Printf("tracegen: wrote %d frames to %s\n", len(frames), outPath)
}

// generate produces frameCount frames cycling participantCount channels
// through valueCount single-byte values, with strictly increasing
// timestamps.
func generate(seed int64, frameCount, participantCount, valueCount int, alternatePolarity bool) []frame {
	rng := rand.New(rand.NewSource(seed))
	frames := make([]frame, 0, frameCount)

	var timestamp uint64
	for i := 0; i < frameCount; i++ {
		timestamp += uint64(1 + rng.Intn(100))

		participantID := uint16(rng.Intn(participantCount))
		value := byte(rng.Intn(valueCount))

		frames = append(frames, frame{
			Timestamp: timestamp,
			IsInput:   alternatePolarity && i%2 == 1,
			Changes: []change{{
				ParticipantID: participantID,
				Bytes:         base64.StdEncoding.EncodeToString([]byte{value}),
			}},
		})
	}
	return frames
}
