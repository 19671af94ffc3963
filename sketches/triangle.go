// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"image/color"
	"math/rand/v2"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/canvas"
)

const (
	triangleRects   = 40
	triangleDegrees = -30.0

	// triangleCentreY places the triangle's centroid slightly below the
	// middle so it reads as centred.
	triangleCentreY = 0.58
)

func init() {
	Register(Sketch{
		Name:        "triangle",
		Description: "skewed riso rectangles clipped to a shadowed triangle",
		Settings:    Settings{Width: 1000, Height: 1000, FPS: DefaultFPS, Seed: 1},
		Setup:       setupTriangle,
	})
}

type skewedRect struct {
	x, y, w, h   float64
	fill, stroke color.NRGBA
	overlay      bool
}

// randomPicker draws reproducible choices from a seed.
type randomPicker struct {
	r *rand.Rand
}

func newRandomPicker(seed uint64) randomPicker {
	return randomPicker{r: rand.New(rand.NewPCG(seed, seed))}
}

func (p randomPicker) rangeOf(lo, hi float64) float64 {
	return lo + p.r.Float64()*(hi-lo)
}

func (p randomPicker) riso() color.NRGBA {
	return sketchkit.MustParseColor(risoPalette[p.r.IntN(len(risoPalette))])
}

func (p randomPicker) pick(cs []color.NRGBA) color.NRGBA {
	return cs[p.r.IntN(len(cs))]
}

func setupTriangle(env Env) (RenderFunc, error) {
	rnd := newRandomPicker(env.Settings.Seed)
	w, h := float64(env.Width), float64(env.Height)

	rectColors := []color.NRGBA{rnd.riso(), rnd.riso()}
	bg := rnd.riso()
	frameColor := rnd.pick(rectColors)

	rects := make([]skewedRect, triangleRects)
	maxH := h * 0.2
	for i := range rects {
		rects[i] = skewedRect{
			fill:    rnd.pick(rectColors),
			stroke:  rnd.pick(rectColors),
			x:       rnd.rangeOf(0, w),
			y:       rnd.rangeOf(0, h),
			w:       rnd.rangeOf(w-w*0.3, w),
			h:       rnd.rangeOf(maxH-maxH*0.9, maxH),
			overlay: rnd.r.Float64() > 0.5,
		}
	}
	sketchkit.Logger().Debug("triangle: composed", "seed", env.Settings.Seed, "rects", len(rects))

	radius := w * 0.3

	return func(f Frame) error {
		c := f.Canvas
		c.Background(bg)

		err := sketchkit.Scoped(c, func() error {
			// The path keeps its device position after Restore.
			c.Save()
			c.Translate(w*0.5, h*triangleCentreY)
			sketchkit.PolygonPath(c, radius, 3)
			c.Restore()
			c.Clip()

			for _, r := range rects {
				if err := drawSkewedRect(c, r, w); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		return sketchkit.Scoped(c, func() error {
			c.Translate(w*0.5, h*triangleCentreY)
			c.SetStrokeColor(frameColor)
			c.SetLineWidth(w * 0.02)
			if err := c.SetCompositeOperation("color-burn"); err != nil {
				return err
			}
			sketchkit.PolygonPath(c, radius-c.LineWidth(), 3)

			return sketchkit.Scoped(c, func() error {
				sketchkit.NewShadow().
					Color(sketchkit.DeriveShade(black, -10, 0.5)).
					OffsetY(10).
					Blur(10).
					Apply(c)
				return c.Stroke()
			})
		})
	}, nil
}

func drawSkewedRect(c *canvas.Canvas, r skewedRect, artboard float64) error {
	return sketchkit.Scoped(c, func() error {
		c.Translate(r.x, r.y)
		c.SetStrokeColor(r.stroke)
		c.SetFillColor(r.fill)
		c.SetLineWidth(artboard * 0.01)
		if r.overlay {
			if err := c.SetCompositeOperation("overlay"); err != nil {
				return err
			}
		}

		sketchkit.SkewedRectanglePath(c, triangleDegrees, r.w, r.h)

		err := sketchkit.Scoped(c, func() error {
			sketchkit.NewShadow().
				Color(sketchkit.DeriveShade(r.fill, -20, 0.8)).
				OffsetX(-10).
				OffsetY(20).
				Blur(8).
				Apply(c)
			return c.Fill()
		})
		if err != nil {
			return err
		}
		if err := c.Stroke(); err != nil {
			return err
		}

		if err := c.SetCompositeOperation("source-over"); err != nil {
			return err
		}
		c.SetLineWidth(artboard * 0.001)
		c.SetStrokeColor(black)
		return c.Stroke()
	})
}
