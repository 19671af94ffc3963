// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// CartesianFromAngle returns the point at radius r along the given angle.
// Degrees are measured clockwise from the positive x axis, as y grows
// downward in surface space.
func CartesianFromAngle(deg, r float64) (x, y float64) {
	rad := DegToRad(deg)
	return math.Cos(rad) * r, math.Sin(rad) * r
}

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax].
// With clamp set the result is limited to the output range.
// A degenerate input range returns outMin.
func MapRange(v, inMin, inMax, outMin, outMax float64, clamp bool) float64 {
	if math.Abs(inMin-inMax) < 1e-12 {
		return outMin
	}
	out := (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
	if !clamp {
		return out
	}
	lo, hi := outMin, outMax
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, out))
}

// Translator is implemented by surfaces that can move their origin.
type Translator interface {
	Translate(x, y float64)
}

// PathTranslator is a PathBuilder that can also move its origin.
type PathTranslator interface {
	PathBuilder
	Translator
}

// SkewedRectanglePath builds a parallelogram whose slanted side is the
// vector (deg, w) and whose vertical sides have height h.
//
// The origin is first translated by (-x/2, -(y+h)/2) so the shape is
// centred on the current origin. Callers scope the translation.
func SkewedRectanglePath(p PathTranslator, deg, w, h float64) {
	x, y := CartesianFromAngle(deg, w)

	p.Translate(x*-0.5, (y+h)*-0.5)

	p.BeginPath()
	p.MoveTo(0, 0)
	p.LineTo(x, y)
	p.LineTo(x, y+h)
	p.LineTo(0, h)
	p.ClosePath()
}

// PolygonPath builds a regular polygon centred on the origin with its first
// vertex pointing straight up.
func PolygonPath(p PathBuilder, radius float64, sides int) {
	if sides < 3 {
		sides = 3
	}
	slice := 2 * math.Pi / float64(sides)

	p.BeginPath()
	p.MoveTo(0, -radius)
	for i := 1; i < sides; i++ {
		theta := float64(i)*slice - math.Pi*0.5
		p.LineTo(math.Cos(theta)*radius, math.Sin(theta)*radius)
	}
	p.ClosePath()
}

// SmoothCurvePath adds a curve through pts to the current path using
// quadratic segments that meet at midpoints.
//
// The curve starts exactly on the first point and ends exactly on the last.
// Each interior point is a control point whose segment ends at the midpoint
// to its successor. Two points produce a straight line and a single point
// only moves the pen.
func SmoothCurvePath(p PathBuilder, pts []*Point) {
	n := len(pts)
	if n == 0 {
		return
	}

	p.MoveTo(pts[0].X, pts[0].Y)
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return
	}

	for c := 1; c < n-1; c++ {
		curr, next := pts[c], pts[c+1]
		if c == n-2 {
			p.QuadraticTo(curr.X, curr.Y, next.X, next.Y)
			continue
		}
		mx := curr.X + (next.X-curr.X)*0.5
		my := curr.Y + (next.Y-curr.Y)*0.5
		p.QuadraticTo(curr.X, curr.Y, mx, my)
	}
}

// PolylinePath adds straight segments through pts to the current path.
func PolylinePath(p PathBuilder, pts []*Point) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
}
