// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"fmt"
	"image/color"

	"github.com/sketchkit/sketchkit"
)

const (
	flowColumns   = 72
	flowRows      = 8
	flowFrequency = 0.002
	flowAmplitude = 50.0
	flowSpeed     = 3.0
	flowMaxWidth  = 5.0
)

func init() {
	Register(Sketch{
		Name:        "animation",
		Description: "rows of noise-driven curves coloured by a cool colormap",
		Settings:    Settings{Width: 1080, Height: 1080, Animate: true, FPS: DefaultFPS},
		Setup:       setupAnimation,
	})
}

func setupAnimation(env Env) (RenderFunc, error) {
	noise := sketchkit.NewSimplexNoise(int64(env.Settings.Seed))

	grid := sketchkit.NewGrid(sketchkit.DefaultGridConfig().
		WithColumns(flowColumns).
		WithRows(flowRows).
		WithWidth(float64(env.Width)).
		WithHeight(float64(env.Height)),
		sketchkit.WithNoiseSource(noise),
	).Build()

	cmap, err := sketchkit.NewColormap("cool", int(flowAmplitude))
	if err != nil {
		return nil, fmt.Errorf("animation: %w", err)
	}

	style := flowStyle(cmap)

	return func(f Frame) error {
		f.Canvas.Background(black)

		t := float64(f.Index) * flowSpeed
		return grid.
			MutatePoints(func(p *sketchkit.Point) {
				offset := noise.Noise2D(p.InitialX+t, p.InitialY+t, flowFrequency, flowAmplitude)
				p.X = p.InitialX + offset
				p.Y = p.InitialY + offset
				p.Noise = noise.Noise2D(p.X, p.Y, flowFrequency, flowAmplitude)
			}).
			DrawSegmentRowCurves(f.Canvas, style)
	}, nil
}

// flowStyle colours and widens each segment by the noise at its start.
func flowStyle(cmap sketchkit.Colormap) sketchkit.SegmentStyle {
	return sketchkit.SegmentStyle{
		Color: sketchkit.Computed(func(n float64) color.Color {
			return cmap.Sample(n, -flowAmplitude, flowAmplitude)
		}),
		Width: sketchkit.Computed(func(n float64) float64 {
			return sketchkit.MapRange(n, -flowAmplitude, flowAmplitude, 0, flowMaxWidth, false)
		}),
	}
}
