// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import (
	"fmt"
	"image/color"
)

// recordingSurface is a Surface that records every call as a string and
// tracks save/restore depth.
type recordingSurface struct {
	ops      []string
	depth    int
	maxDepth int

	fill   color.Color
	stroke color.Color
	width  float64
	shadow Shadow

	strokes []strokeRecord

	failFill error
}

type strokeRecord struct {
	color color.Color
	width float64
}

func (r *recordingSurface) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Save() {
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
	r.add("save")
}

func (r *recordingSurface) Restore() {
	r.depth--
	r.add("restore")
}

func (r *recordingSurface) Translate(x, y float64) { r.add("translate %g %g", x, y) }
func (r *recordingSurface) Rotate(a float64)       { r.add("rotate %g", a) }
func (r *recordingSurface) Scale(x, y float64)     { r.add("scale %g %g", x, y) }
func (r *recordingSurface) BeginPath()             { r.add("begin") }
func (r *recordingSurface) MoveTo(x, y float64)    { r.add("M %g %g", x, y) }
func (r *recordingSurface) LineTo(x, y float64)    { r.add("L %g %g", x, y) }
func (r *recordingSurface) ClosePath()             { r.add("Z") }

func (r *recordingSurface) QuadraticTo(cx, cy, x, y float64) {
	r.add("Q %g %g %g %g", cx, cy, x, y)
}

func (r *recordingSurface) Arc(x, y, rad, a1, a2 float64) {
	r.add("arc %g %g %g", x, y, rad)
}

func (r *recordingSurface) SetFillColor(c color.Color)   { r.fill = c }
func (r *recordingSurface) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *recordingSurface) SetLineWidth(w float64)       { r.width = w }
func (r *recordingSurface) SetShadow(s Shadow)           { r.shadow = s; r.add("shadow") }

func (r *recordingSurface) Fill() error {
	r.add("fill")
	return r.failFill
}

func (r *recordingSurface) Stroke() error {
	r.add("stroke")
	r.strokes = append(r.strokes, strokeRecord{color: r.stroke, width: r.width})
	return nil
}

// pathOps returns recorded path commands (M, L, Q, Z) only.
func (r *recordingSurface) pathOps() []string {
	var out []string
	for _, op := range r.ops {
		switch op[0] {
		case 'M', 'L', 'Q', 'Z':
			out = append(out, op)
		}
	}
	return out
}

func (r *recordingSurface) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}
