// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package audio

import (
	"encoding/binary"
	"math"
)

// sine returns n samples of a unit sine completing k cycles every size
// samples, so it sits exactly on bin k of a size-point FFT.
func sine(n, k, size int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(k) * float64(i) / float64(size))
	}
	return out
}

// pcm encodes mono samples as 16-bit little-endian stereo frames with the
// same value in both channels.
func pcm(samples []float64) []byte {
	b := make([]byte, len(samples)*BytesPerFrame)
	for i, s := range samples {
		v := uint16(int16(s * 0.9 * math.MaxInt16))
		binary.LittleEndian.PutUint16(b[i*4:], v)
		binary.LittleEndian.PutUint16(b[i*4+2:], v)
	}
	return b
}

func argmax(data []float64) int {
	best := 0
	for i, v := range data {
		if v > data[best] {
			best = i
		}
	}
	return best
}
