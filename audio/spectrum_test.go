// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package audio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyseStream(t *testing.T) {
	const size = 256
	a, err := NewAnalyser(size, WithSmoothing(0))
	require.NoError(t, err)

	// Four full windows plus a partial one that is ignored.
	src := pcm(sine(size*4+100, 20, size))
	spec, err := AnalyseStream(bytes.NewReader(src), a, SampleRate)
	require.NoError(t, err)

	assert.Equal(t, 4, spec.Windows)
	assert.Equal(t, size, spec.FFTSize)
	assert.Len(t, spec.Decibels, size/2)
	assert.Equal(t, 20, spec.Peak())
}

func TestAnalyseStream_Empty(t *testing.T) {
	a, err := NewAnalyser(64)
	require.NoError(t, err)

	spec, err := AnalyseStream(strings.NewReader(""), a, SampleRate)
	require.NoError(t, err)
	assert.Zero(t, spec.Windows)
	for _, v := range spec.Decibels {
		require.Equal(t, a.MinDecibels(), v)
	}
}

func TestSpectrum_Plot(t *testing.T) {
	spec := Spectrum{SampleRate: 8000, FFTSize: 8, Windows: 1, Decibels: []float64{-90, -40, -60, -80}}

	p, err := spec.Plot("tone")
	require.NoError(t, err)
	assert.Equal(t, "tone", p.Title.Text)
	assert.Equal(t, 1, spec.Peak())

	path := filepath.Join(t.TempDir(), "tone.png")
	require.NoError(t, spec.SavePlot(path, "tone"))
	assert.FileExists(t, path)
}
