// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/canvas"
)

// harness runs a registered sketch on a real canvas.
type harness struct {
	t      *testing.T
	sketch Sketch
	canvas *canvas.Canvas
	input  *sketchkit.PointerInput
	render RenderFunc
	frame  int
}

func newHarness(t *testing.T, name string, w, h int, mutate ...func(*Settings)) *harness {
	t.Helper()
	s, err := Get(name)
	require.NoError(t, err)

	settings := s.Settings
	settings.Width, settings.Height = w, h
	for _, m := range mutate {
		m(&settings)
	}

	in := sketchkit.NewPointerInput(float64(w), float64(h))
	render, err := s.Setup(Env{Width: w, Height: h, Input: in, Settings: settings})
	require.NoError(t, err)

	c := canvas.New(w, h)
	t.Cleanup(func() { _ = c.Close() })
	return &harness{t: t, sketch: s, canvas: c, input: in, render: render}
}

func (h *harness) draw(a *audio.Analyser) {
	h.t.Helper()
	err := h.render(Frame{
		Canvas:   h.canvas,
		Width:    h.canvas.Width(),
		Height:   h.canvas.Height(),
		Index:    h.frame,
		Analyser: a,
	})
	require.NoError(h.t, err)
	require.Zero(h.t, h.canvas.Depth(), "render left saved state behind")
	h.frame++
}

func (h *harness) px(x, y int) [4]uint8 {
	i := (y*h.canvas.Width() + x) * 4
	p := h.canvas.Pixels()
	return [4]uint8{p[i], p[i+1], p[i+2], p[i+3]}
}

// sineAnalyser returns an analyser that has heard a full-scale sine at the
// centre frequency of bin k.
func sineAnalyser(t *testing.T, fftSize, k int) *audio.Analyser {
	t.Helper()
	a, err := audio.NewAnalyser(fftSize, audio.WithSmoothing(0))
	require.NoError(t, err)

	samples := make([]float64, fftSize)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(k) * float64(i) / float64(fftSize))
	}
	a.Write(samples)
	return a
}
