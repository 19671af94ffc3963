// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

// pathOp is one path command with its points in device pixels.
type pathOp struct {
	kind opKind
	pts  [3]gg.Point
}

// devicePath mirrors the gg path in device space so it can be replayed
// onto the shadow mask regardless of later transform changes.
type devicePath struct {
	ops     []pathOp
	current bool
}

func (p *devicePath) reset() {
	p.ops = p.ops[:0]
	p.current = false
}

func (p *devicePath) empty() bool {
	return len(p.ops) == 0
}

func (p *devicePath) add(kind opKind, pts ...gg.Point) {
	op := pathOp{kind: kind}
	copy(op.pts[:], pts)
	p.ops = append(p.ops, op)
	p.current = true
}

// replay builds the path on dc, which must have an identity transform.
func (p *devicePath) replay(dc *gg.Context) {
	for _, op := range p.ops {
		switch op.kind {
		case opMove:
			dc.MoveTo(op.pts[0].X, op.pts[0].Y)
		case opLine:
			dc.LineTo(op.pts[0].X, op.pts[0].Y)
		case opQuad:
			dc.QuadraticTo(op.pts[0].X, op.pts[0].Y, op.pts[1].X, op.pts[1].Y)
		case opCubic:
			dc.CubicTo(op.pts[0].X, op.pts[0].Y, op.pts[1].X, op.pts[1].Y, op.pts[2].X, op.pts[2].Y)
		case opClose:
			dc.ClosePath()
		}
	}
}

// bounds returns the integer bounding box of every recorded point grown by
// pad on each side. Control points are included, so the box is
// conservative.
func (p *devicePath) bounds(pad float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, op := range p.ops {
		n := 0
		switch op.kind {
		case opMove, opLine:
			n = 1
		case opQuad:
			n = 2
		case opCubic:
			n = 3
		}
		for _, pt := range op.pts[:n] {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
}

func (c *Canvas) device(x, y float64) gg.Point {
	dx, dy := c.dc.TransformPoint(x, y)
	return gg.Pt(dx, dy)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
	c.path.reset()
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
	c.path.add(opMove, c.device(x, y))
}

// LineTo adds a straight segment. Without a current point it acts as
// MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !c.path.current {
		c.MoveTo(x, y)
		return
	}
	c.dc.LineTo(x, y)
	c.path.add(opLine, c.device(x, y))
}

// QuadraticTo adds a quadratic Bézier segment with control point (cx, cy).
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	if !c.path.current {
		c.MoveTo(cx, cy)
	}
	c.dc.QuadraticTo(cx, cy, x, y)
	c.path.add(opQuad, c.device(cx, cy), c.device(x, y))
}

// CubicTo adds a cubic Bézier segment.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.path.current {
		c.MoveTo(c1x, c1y)
	}
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
	c.path.add(opCubic, c.device(c1x, c1y), c.device(c2x, c2y), c.device(x, y))
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if !c.path.current {
		return
	}
	c.dc.ClosePath()
	c.path.add(opClose)
}

// Arc adds a clockwise circular arc from angle1 to angle2 (radians) centred
// on (x, y). A line joins the current point to the start of the arc, or the
// arc starts a new subpath when there is none. Sweeps of 2π or more draw a
// full circle.
//
// The arc is built from cubic segments in user space, so it follows any
// scale or rotation of the transform.
func (c *Canvas) Arc(x, y, r, angle1, angle2 float64) {
	if r < 0 {
		r = -r
	}
	sweep := angle2 - angle1
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}

	sx, sy := x+r*math.Cos(angle1), y+r*math.Sin(angle1)
	if c.path.current {
		c.LineTo(sx, sy)
	} else {
		c.MoveTo(sx, sy)
	}
	if sweep == 0 || r == 0 {
		return
	}

	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a := angle1
	for i := 0; i < n; i++ {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		c.CubicTo(
			x+r*(cosA-k*sinA), y+r*(sinA+k*cosA),
			x+r*(cosB+k*sinB), y+r*(sinB-k*cosB),
			x+r*cosB, y+r*sinB,
		)
		a = b
	}
}

// Rect adds a closed rectangle subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}
