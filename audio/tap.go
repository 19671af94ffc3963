// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package audio

import (
	"encoding/binary"
	"io"
)

// BytesPerFrame is the size of one 16-bit little-endian stereo frame, the format ebiten
// decoders produce.
const BytesPerFrame = 4

// Tap is an io.Reader that passes a PCM stream through unchanged while
// feeding a mono mix of it to an Analyser.
//
// Reads that end mid-frame are handled; the partial frame is analysed once
// the rest of it arrives.
type Tap struct {
	r       io.Reader
	a       *Analyser
	pending []byte
	mono    []float64
}

// NewTap wraps r so every byte read from it is analysed by a.
func NewTap(r io.Reader, a *Analyser) *Tap {
	return &Tap{r: r, a: a}
}

// Read implements io.Reader.
func (t *Tap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		t.analyse(p[:n])
	}
	return n, err
}

func (t *Tap) analyse(b []byte) {
	if len(t.pending) > 0 {
		need := BytesPerFrame - len(t.pending)
		if len(b) < need {
			t.pending = append(t.pending, b...)
			return
		}
		t.pending = append(t.pending, b[:need]...)
		t.mono = append(t.mono[:0], frameToMono(t.pending))
		t.pending = t.pending[:0]
		b = b[need:]
	} else {
		t.mono = t.mono[:0]
	}

	whole := len(b) / BytesPerFrame * BytesPerFrame
	for i := 0; i < whole; i += BytesPerFrame {
		t.mono = append(t.mono, frameToMono(b[i:i+BytesPerFrame]))
	}
	t.pending = append(t.pending, b[whole:]...)

	if len(t.mono) > 0 {
		t.a.Write(t.mono)
	}
}

// frameToMono averages the two channels of a frame into [-1, 1].
func frameToMono(f []byte) float64 {
	l := int16(binary.LittleEndian.Uint16(f[0:2]))
	r := int16(binary.LittleEndian.Uint16(f[2:4]))
	return (float64(l) + float64(r)) / 2 / 32768
}
