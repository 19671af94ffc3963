// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"math"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
)

// vizBins are the spectrum bins the circle and arc visualisers follow.
var vizBins = []int{4, 12, 37}

var paper = sketchkit.MustParseColor("#EEEAE0")

const defaultAudioFile = "audio/demo1.mp3"

func init() {
	Register(Sketch{
		Name:        "audio-viz",
		Description: "circle whose radius follows the average level of the track",
		Settings: Settings{
			Width: 1080, Height: 1080, Animate: true, FPS: DefaultFPS,
			Audio: true, AudioFile: defaultAudioFile,
			FFTSize: audio.DefaultFFTSize, Smoothing: audio.DefaultSmoothing,
		},
		Setup: setupAudioViz,
	})
	Register(Sketch{
		Name:        "audio-viz-circles",
		Description: "concentric circles driven by three frequency bins",
		Settings: Settings{
			Width: 1080, Height: 1080, Animate: true, FPS: DefaultFPS,
			Audio: true, AudioFile: defaultAudioFile,
			FFTSize: 512, Smoothing: 0.9,
		},
		Setup: setupAudioCircles,
	})
	Register(Sketch{
		Name:        "audio-viz-arcs",
		Description: "rings of arc slices whose radius and weight follow the spectrum",
		Settings: Settings{
			Width: 1080, Height: 1080, Animate: true, FPS: DefaultFPS,
			Audio: true, AudioFile: defaultAudioFile,
			FFTSize: 512, Smoothing: 0.9,
		},
		Setup: setupAudioArcs,
	})
}

// spectrum reads the analyser once per frame into a reused buffer.
type spectrum struct {
	data []float64
}

func (s *spectrum) read(a *audio.Analyser) []float64 {
	s.data = a.FloatFrequencyData(s.data)
	return s.data
}

// level maps bin k onto [0, 1] across the analyser's decibel range.
func level(a *audio.Analyser, data []float64, k int) float64 {
	if k >= len(data) {
		return 0
	}
	return sketchkit.MapRange(data[k], a.MinDecibels(), a.MaxDecibels(), 0, 1, true)
}

func setupAudioViz(Env) (RenderFunc, error) {
	var spec spectrum

	return func(f Frame) error {
		c := f.Canvas
		c.Background(white)
		if f.Analyser == nil {
			return nil
		}

		avg := f.Analyser.AverageDecibels(spec.read(f.Analyser))

		return sketchkit.Scoped(c, func() error {
			c.Translate(float64(f.Width)*0.5, float64(f.Height)*0.5)
			c.SetLineWidth(10)
			c.SetStrokeColor(black)
			c.BeginPath()
			c.Arc(0, 0, math.Abs(avg), 0, 2*math.Pi)
			return c.Stroke()
		})
	}, nil
}

func setupAudioCircles(Env) (RenderFunc, error) {
	const maxRadius = 300.0
	var spec spectrum

	return func(f Frame) error {
		c := f.Canvas
		c.Background(white)
		if f.Analyser == nil {
			return nil
		}

		data := spec.read(f.Analyser)
		for _, bin := range vizBins {
			r := level(f.Analyser, data, bin) * maxRadius
			err := sketchkit.Scoped(c, func() error {
				c.Translate(float64(f.Width)*0.5, float64(f.Height)*0.5)
				c.SetLineWidth(10)
				c.SetStrokeColor(black)
				c.BeginPath()
				c.Arc(0, 0, r, 0, 2*math.Pi)
				return c.Stroke()
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func setupAudioArcs(Env) (RenderFunc, error) {
	const (
		rings     = 5
		slices    = 9
		radius    = 200.0
		ringGap   = 40.0
		maxWeight = 20.0
	)
	slice := 2 * math.Pi / slices
	var spec spectrum

	return func(f Frame) error {
		c := f.Canvas
		c.Background(paper)
		if f.Analyser == nil {
			return nil
		}

		data := spec.read(f.Analyser)
		return sketchkit.Scoped(c, func() error {
			c.Translate(float64(f.Width)*0.5, float64(f.Height)*0.5)
			c.SetStrokeColor(black)

			for i := 0; i < rings; i++ {
				for j := 0; j < slices; j++ {
					v := level(f.Analyser, data, vizBins[0]+i*slices+j)
					if v == 0 {
						continue
					}
					c.SetLineWidth(v * maxWeight)
					c.BeginPath()
					r := radius + float64(i)*ringGap + v*ringGap*0.5
					c.Arc(0, 0, r, float64(j)*slice, float64(j+1)*slice)
					if err := c.Stroke(); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, nil
}
