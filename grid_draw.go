// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "image/color"

var (
	defaultGridPointColor color.Color = color.NRGBA{R: 0xff, A: 0xff}
	defaultLineColor      color.Color = color.NRGBA{R: 0xff, A: 0xff}
)

const (
	defaultLineWidth = 4.0

	// DefaultStretchX and DefaultStretchY scale the inter-point delta to
	// find a segment endpoint in DrawSegmentRowCurves.
	DefaultStretchX = 0.8
	DefaultStretchY = 5.5
)

// LineStyle is a constant stroke style.
type LineStyle struct {
	// Color defaults to red.
	Color color.Color
	// Width defaults to 4.
	Width float64
}

func (s LineStyle) resolve() (color.Color, float64) {
	c, w := s.Color, s.Width
	if c == nil {
		c = defaultLineColor
	}
	if w == 0 {
		w = defaultLineWidth
	}
	return c, w
}

// SegmentStyle styles DrawSegmentRowCurves. Color and Width resolve against
// the noise stored on each segment's starting point.
type SegmentStyle struct {
	Color ColorParam
	Width WidthParam

	// StretchX and StretchY scale the delta to the next point to find the
	// segment endpoint. Zero selects DefaultStretchX and DefaultStretchY.
	StretchX, StretchY float64

	// DriftX and DriftY pull the start of each following segment back by
	// col/cols*DriftX and row/rows*DriftY.
	DriftX, DriftY float64
}

// DrawPoints draws every point, offset by the grid translation.
// A zero style draws red points of radius DefaultPointSize.
func (g *Grid) DrawPoints(s Surface, style PointStyle) error {
	g.ensureBuilt()

	if style.Color == nil {
		style.Color = defaultGridPointColor
	}
	shadow := style.Shadow
	style.Shadow = nil

	return Scoped(s, func() error {
		s.Translate(g.Translation())
		if shadow != nil {
			shadow.Apply(s)
		}
		for _, p := range g.points {
			if err := p.Draw(s, style); err != nil {
				return err
			}
		}
		return nil
	})
}

// DrawRowLines strokes each row as a polyline.
func (g *Grid) DrawRowLines(s Surface, style LineStyle) error {
	return g.strokeRows(s, style, PolylinePath)
}

// DrawRowCurves strokes each row as a curve smoothed through midpoints.
// See SmoothCurvePath.
func (g *Grid) DrawRowCurves(s Surface, style LineStyle) error {
	return g.strokeRows(s, style, SmoothCurvePath)
}

func (g *Grid) strokeRows(s Surface, style LineStyle, build func(PathBuilder, []*Point)) error {
	g.ensureBuilt()
	c, w := style.resolve()

	return Scoped(s, func() error {
		s.Translate(g.Translation())
		s.SetStrokeColor(c)
		s.SetLineWidth(w)

		for r := 0; r < g.rows; r++ {
			s.BeginPath()
			build(s, g.Row(r))
			if err := s.Stroke(); err != nil {
				return err
			}
		}
		return nil
	})
}

// DrawSegmentRowCurves strokes every segment of every row separately so
// colour and width can vary along the row.
//
// For segment c of row r, from point curr to point next, the curve runs
// from the previous segment's end through control point curr to
// curr + (next-curr)*stretch. The stretch exaggerates the motion between
// neighbours into a flowing line.
func (g *Grid) DrawSegmentRowCurves(s Surface, style SegmentStyle) error {
	g.ensureBuilt()

	sx, sy := style.StretchX, style.StretchY
	if sx == 0 {
		sx = DefaultStretchX
	}
	if sy == 0 {
		sy = DefaultStretchY
	}

	return Scoped(s, func() error {
		s.Translate(g.Translation())

		for r := 0; r < g.rows; r++ {
			row := g.Row(r)
			var lastX, lastY float64

			for c := 0; c < len(row)-1; c++ {
				curr, next := row[c], row[c+1]

				mx := curr.X + (next.X-curr.X)*sx
				my := curr.Y + (next.Y-curr.Y)*sy

				if c == 0 {
					lastX, lastY = curr.X, curr.Y
				}

				col := style.Color.Resolve(curr.Noise)
				if col == nil {
					col = defaultLineColor
				}
				width := style.Width.Resolve(curr.Noise)
				if !style.Width.IsComputed() && width == 0 {
					width = defaultLineWidth
				}

				s.BeginPath()
				s.SetStrokeColor(col)
				s.SetLineWidth(width)
				s.MoveTo(lastX, lastY)
				s.QuadraticTo(curr.X, curr.Y, mx, my)
				if err := s.Stroke(); err != nil {
					return err
				}

				lastX = mx - float64(c)/float64(g.cols)*style.DriftX
				lastY = my - float64(r)/float64(g.rows)*style.DriftY
			}
		}
		return nil
	})
}
