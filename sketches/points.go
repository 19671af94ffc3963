// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"image/color"

	"github.com/sketchkit/sketchkit"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black     = color.NRGBA{A: 0xff}
	red       = color.NRGBA{R: 0xff, A: 0xff}
	blue      = color.NRGBA{B: 0xff, A: 0xff}
	guideGrey = sketchkit.MustParseColor("#999")
)

func init() {
	Register(Sketch{
		Name:        "grid",
		Description: "10x10 lattice of red points on black",
		Settings:    Settings{Width: 1080, Height: 1080},
		Setup:       setupGrid,
	})
	Register(Sketch{
		Name:        "curves",
		Description: "drag points of a smoothed curve, click empty space to add one",
		Settings:    Settings{Width: 1000, Height: 1000, Animate: true, FPS: DefaultFPS},
		Setup:       setupCurves(true),
	})
	Register(Sketch{
		Name:        "multiline-curves",
		Description: "drag the five points of a smoothed curve",
		Settings:    Settings{Width: 1000, Height: 1000, Animate: true, FPS: DefaultFPS},
		Setup:       setupCurves(false),
	})
	Register(Sketch{
		Name:        "lines",
		Description: "one quadratic curve with a draggable control handle",
		Settings:    Settings{Width: 1000, Height: 1000, Animate: true, FPS: DefaultFPS},
		Setup:       setupLines,
	})
}

func setupGrid(env Env) (RenderFunc, error) {
	grid := sketchkit.NewGrid(sketchkit.DefaultGridConfig().
		WithColumns(10).
		WithRows(10).
		WithWidth(float64(env.Width)).
		WithHeight(float64(env.Height)))

	return func(f Frame) error {
		f.Canvas.Background(black)
		return grid.DrawPoints(f.Canvas, sketchkit.PointStyle{Color: red, Size: 5})
	}, nil
}

// curvePoints is the starting shape of the curve editors.
func curvePoints() *sketchkit.PointList {
	return sketchkit.NewPointList(
		sketchkit.NewPoint(200, 540),
		sketchkit.NewPoint(400, 300),
		sketchkit.NewPoint(800, 540),
		sketchkit.NewPoint(756, 812),
		sketchkit.NewPoint(547, 754),
	)
}

// setupCurves builds the curve editor. With insert set, clicking away from
// every point appends a new one there.
func setupCurves(insert bool) SetupFunc {
	return func(env Env) (RenderFunc, error) {
		points := curvePoints()

		var opts []sketchkit.ControllerOption
		if insert {
			opts = append(opts, sketchkit.WithMissHandler(func(x, y float64) {
				points.Append(sketchkit.NewPoint(x, y))
			}))
		}
		if env.Input != nil {
			sketchkit.Attach(env.Input, points, opts...)
		}

		return func(f Frame) error {
			c := f.Canvas
			c.Background(white)

			return sketchkit.Scoped(c, func() error {
				c.SetStrokeColor(guideGrey)
				c.BeginPath()
				sketchkit.PolylinePath(c, points.Points())
				if err := c.Stroke(); err != nil {
					return err
				}

				c.BeginPath()
				sketchkit.SmoothCurvePath(c, points.Points())
				c.SetLineWidth(4)
				c.SetStrokeColor(blue)
				if err := c.Stroke(); err != nil {
					return err
				}

				return points.Draw(c, sketchkit.PointStyle{})
			})
		}, nil
	}
}

func setupLines(env Env) (RenderFunc, error) {
	points := sketchkit.NewPointList(
		sketchkit.NewPoint(200, 540),
		sketchkit.NewPoint(400, 300, sketchkit.AsControl()),
		sketchkit.NewPoint(800, 540),
	)
	if env.Input != nil {
		sketchkit.Attach(env.Input, points, sketchkit.WithExclusiveHit())
	}

	return func(f Frame) error {
		c := f.Canvas
		c.Background(white)

		start, ctrl, end := points.At(0), points.At(1), points.At(2)
		err := sketchkit.Scoped(c, func() error {
			c.SetStrokeColor(black)
			c.BeginPath()
			c.MoveTo(start.X, start.Y)
			c.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
			return c.Stroke()
		})
		if err != nil {
			return err
		}
		return points.Draw(c, sketchkit.PointStyle{})
	}, nil
}
