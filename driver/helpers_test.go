// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSineWAV writes a 16-bit stereo WAV of a sine at freq Hz.
func writeSineWAV(t *testing.T, sampleRate int, freq float64, seconds float64) string {
	t.Helper()

	n := int(float64(sampleRate) * seconds)
	var pcm bytes.Buffer
	for i := 0; i < n; i++ {
		v := int16(0.8 * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		_ = binary.Write(&pcm, binary.LittleEndian, [2]int16{v, v})
	}

	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }
	buf.WriteString("RIFF")
	w(uint32(36 + pcm.Len()))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(2))
	w(uint32(sampleRate))
	w(uint32(sampleRate * 4))
	w(uint16(4))
	w(uint16(16))
	buf.WriteString("data")
	w(uint32(pcm.Len()))
	buf.Write(pcm.Bytes())

	path := filepath.Join(t.TempDir(), "sine.wav")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}
