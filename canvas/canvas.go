// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/internal/blend"
)

var _ sketchkit.Surface = (*Canvas)(nil)

// state is the part of the drawing state gg does not track itself.
type state struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	shadow    sketchkit.Shadow
	composite blend.Mode
}

func defaultState() state {
	return state{
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		composite: blend.SourceOver,
	}
}

// Canvas is a raster drawing surface with HTML canvas semantics.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	state state
	stack []state

	path    devicePath
	scratch *gg.Context

	fonts *text.FontSource
}

// New creates a width*height canvas. The canvas starts transparent unless
// WithBackground is given.
func New(width, height int, opts ...Option) *Canvas {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		dc:    gg.NewContext(width, height),
		state: defaultState(),
		fonts: o.fonts,
	}
	if o.background != nil {
		c.Background(o.background)
	}

	sketchkit.Logger().Debug("canvas: created", "width", width, "height", height)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Context returns the underlying gg context for drawing that Canvas does
// not cover. Paths built directly on it are not seen by shadows.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Save pushes the complete drawing state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
	c.dc.Push()
}

// Restore pops the state pushed by the matching Save. Restore without a
// matching Save does nothing.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
}

// Depth returns the number of unmatched Save calls.
func (c *Canvas) Depth() int { return len(c.stack) }

// Translate moves the origin.
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// Rotate rotates the axes by angle radians, clockwise on screen.
func (c *Canvas) Rotate(angle float64) { c.dc.Rotate(angle) }

// Scale scales the axes.
func (c *Canvas) Scale(x, y float64) { c.dc.Scale(x, y) }

// ResetTransform sets the transform back to identity.
func (c *Canvas) ResetTransform() { c.dc.Identity() }

// TransformPoint maps (x, y) from user space to device pixels.
func (c *Canvas) TransformPoint(x, y float64) (float64, float64) {
	return c.dc.TransformPoint(x, y)
}

// SetFillColor sets the colour used by Fill and Text.
func (c *Canvas) SetFillColor(col color.Color) { c.state.fill = col }

// SetStrokeColor sets the colour used by Stroke.
func (c *Canvas) SetStrokeColor(col color.Color) { c.state.stroke = col }

// SetLineWidth sets the stroke width in user units. Non-positive and NaN
// widths are ignored, as on an HTML canvas.
func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	c.state.lineWidth = w
}

// LineWidth returns the current stroke width.
func (c *Canvas) LineWidth() float64 { return c.state.lineWidth }

// SetShadow sets the shadow for subsequent fills and strokes.
func (c *Canvas) SetShadow(s sketchkit.Shadow) { c.state.shadow = s }

// Fill fills the current path with the fill colour. The path is kept.
func (c *Canvas) Fill() error {
	return c.paint(c.state.fill, false)
}

// Stroke strokes the current path with the stroke colour. The path is kept.
func (c *Canvas) Stroke() error {
	return c.paint(c.state.stroke, true)
}

// Clip intersects the clip region with the current path. The path is kept.
func (c *Canvas) Clip() {
	c.dc.ClipPreserve()
}

// paint draws the current path once, with its shadow and composite
// operation applied.
func (c *Canvas) paint(col color.Color, stroke bool) error {
	if c.path.empty() {
		return nil
	}

	if c.state.composite == blend.SourceOver {
		c.drawShadow(col, stroke, c.dc.ResizeTarget())
		return c.draw(col, stroke)
	}

	return c.composited(c.state.composite, func(target *gg.Pixmap) error {
		c.drawShadow(col, stroke, target)
		return c.draw(col, stroke)
	})
}

func (c *Canvas) draw(col color.Color, stroke bool) error {
	c.dc.SetColor(col)
	if stroke {
		c.dc.SetLineWidth(c.state.lineWidth)
		return c.dc.StrokePreserve()
	}
	return c.dc.FillPreserve()
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// Background fills every pixel with col, ignoring transform and clip.
func (c *Canvas) Background(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// Image returns a snapshot of the canvas.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Pixels returns the premultiplied RGBA bytes of the canvas, row-major
// with a stride of 4*Width. The slice aliases the canvas and is only valid
// until the next draw call.
func (c *Canvas) Pixels() []byte {
	return c.dc.ResizeTarget().Data()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the canvas resources.
func (c *Canvas) Close() error {
	if c.scratch != nil {
		_ = c.scratch.Close()
	}
	return c.dc.Close()
}
