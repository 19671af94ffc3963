// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "image/color"

// PathBuilder is the subset of a drawing surface that constructs paths.
// The geometry helpers only need this much.
type PathBuilder interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	ClosePath()
}

// Surface is a 2D drawing surface with canvas-style state.
//
// Save pushes the complete drawing state (transform, fill and stroke
// styles, line width, shadow, clip); Restore pops it. Fill and Stroke do not
// consume the current path, so a path may be filled and then stroked.
//
// The canvas package provides the gg-backed implementation.
type Surface interface {
	PathBuilder

	Save()
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	// Arc adds a circular arc centred on (x, y) to the current path.
	// Angles are in radians, clockwise in y-down space.
	Arc(x, y, r, angle1, angle2 float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetShadow(s Shadow)

	Fill() error
	Stroke() error
}

// Scoped saves the surface state, runs fn and restores the state.
// Restore runs on every exit path, including an error return or a panic in
// fn, so fn may leave transforms and styles changed.
func Scoped(s Surface, fn func() error) error {
	s.Save()
	defer s.Restore()
	return fn()
}
