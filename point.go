// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import (
	"image/color"
	"math"
)

// HitRadius is the distance, in surface units, within which a pointer
// coordinate hits a Point. The bound is exclusive.
const HitRadius = 20.0

// DefaultPointSize is the radius used by Point.Draw when PointStyle.Size is zero.
const DefaultPointSize = 10.0

var (
	anchorColor  color.Color = color.Black
	controlColor color.Color = color.NRGBA{R: 0xff, A: 0xff}
)

// Point is a mutable 2D position with drag state.
//
// X and Y are the current position. InitialX and InitialY snapshot the
// position at creation and are the rest state for animated offsets.
type Point struct {
	X, Y float64

	InitialX, InitialY float64

	// Noise is the last sampled coherent-noise scalar for this point.
	Noise float64

	// Control marks the point as a curve control handle rather than an
	// interpolation anchor.
	Control bool

	dragging bool
}

// PointOption configures a Point during creation.
type PointOption func(*Point)

// WithNoise stores a noise sample on the point.
func WithNoise(n float64) PointOption {
	return func(p *Point) {
		p.Noise = n
	}
}

// AsControl marks the point as a curve control handle.
func AsControl() PointOption {
	return func(p *Point) {
		p.Control = true
	}
}

// NewPoint creates a point at (x, y) that is not being dragged.
func NewPoint(x, y float64, opts ...PointOption) *Point {
	p := &Point{X: x, Y: y, InitialX: x, InitialY: y}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StartDrag marks the point as dragging.
func (p *Point) StartDrag() { p.dragging = true }

// StopDrag clears the dragging flag.
func (p *Point) StopDrag() { p.dragging = false }

// IsDragging reports whether the point is being dragged.
func (p *Point) IsDragging() bool { return p.dragging }

// HitTest reports whether (px, py) lies strictly within HitRadius of the
// point. The coordinates must already be in the point's space.
func (p *Point) HitTest(px, py float64) bool {
	return Distance(p.X, p.Y, px, py) < HitRadius
}

// PointStyle controls how points are drawn.
type PointStyle struct {
	// Size is the circle radius. Zero means DefaultPointSize.
	Size float64

	// Color is the fill. Nil means black, or red for control points.
	Color color.Color

	// Shadow, when set, is applied before drawing. Only Grid.DrawPoints
	// uses it.
	Shadow *Shadow
}

// Draw renders the point as a filled circle centred on (X, Y).
// The surface state is restored afterwards.
func (p *Point) Draw(s Surface, style PointStyle) error {
	size := style.Size
	if size == 0 {
		size = DefaultPointSize
	}
	fill := style.Color
	if fill == nil {
		fill = anchorColor
		if p.Control {
			fill = controlColor
		}
	}

	return Scoped(s, func() error {
		s.Translate(p.X, p.Y)
		s.SetFillColor(fill)
		s.BeginPath()
		s.Arc(0, 0, size, 0, 2*math.Pi)
		return s.Fill()
	})
}

// PointSource is a collection of points that the interaction controller
// reads on every pointer event. Implementations may grow between events.
type PointSource interface {
	Points() []*Point
}

// PointList is an ordered, growable point collection for ad-hoc scenes.
type PointList struct {
	points []*Point
}

// NewPointList creates a list holding the given points.
func NewPointList(points ...*Point) *PointList {
	return &PointList{points: points}
}

// Points returns the points in insertion order.
// The slice is owned by the list; callers may mutate the points but not the slice.
func (l *PointList) Points() []*Point {
	return l.points
}

// Append adds points to the end of the list.
func (l *PointList) Append(points ...*Point) {
	l.points = append(l.points, points...)
}

// Len returns the number of points.
func (l *PointList) Len() int {
	return len(l.points)
}

// At returns the i-th point.
func (l *PointList) At(i int) *Point {
	return l.points[i]
}

// Draw draws every point with the given style.
func (l *PointList) Draw(s Surface, style PointStyle) error {
	for _, p := range l.points {
		if err := p.Draw(s, style); err != nil {
			return err
		}
	}
	return nil
}
