// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xy struct{ X, Y float64 }

func positions(pts []*Point) []xy {
	out := make([]xy, len(pts))
	for i, p := range pts {
		out[i] = xy{p.X, p.Y}
	}
	return out
}

func TestGridConfig_Immutable(t *testing.T) {
	base := DefaultGridConfig()
	derived := base.WithColumns(9).WithRows(3).WithNoise(0.1, 2)

	assert.Equal(t, 5, base.Columns)
	assert.Equal(t, 5, base.Rows)
	assert.Nil(t, base.Noise)

	assert.Equal(t, 9, derived.Columns)
	assert.Equal(t, 3, derived.Rows)
	require.NotNil(t, derived.Noise)
	assert.Equal(t, NoiseConfig{Frequency: 0.1, Amplitude: 2}, *derived.Noise)
}

func TestGrid_BuildLayout(t *testing.T) {
	tests := []struct {
		name          string
		cols, rows    int
		width, height float64
	}{
		{"single cell", 1, 1, 100, 100},
		{"one row", 4, 1, 400, 50},
		{"one column", 1, 3, 10, 300},
		{"square", 10, 10, 1080, 1080},
		{"uneven", 7, 3, 333, 91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(DefaultGridConfig().
				WithColumns(tt.cols).
				WithRows(tt.rows).
				WithWidth(tt.width).
				WithHeight(tt.height)).Build()

			pts := g.Points()
			require.Len(t, pts, tt.cols*tt.rows)

			cw := tt.width / float64(tt.cols)
			ch := tt.height / float64(tt.rows)
			for r := 0; r < tt.rows; r++ {
				for c := 0; c < tt.cols; c++ {
					p := pts[r*tt.cols+c]
					assert.InDelta(t, float64(c)*cw, p.X, 1e-9, "x of (%d,%d)", c, r)
					assert.InDelta(t, float64(r)*ch, p.Y, 1e-9, "y of (%d,%d)", c, r)
					assert.Zero(t, p.Noise)
				}
			}
		})
	}
}

func TestGrid_TwoByOne(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 2, Rows: 1, Width: 100, Height: 50, Margin: 0.5}).Build()

	want := []xy{{0, 0}, {50, 0}}
	if diff := cmp.Diff(want, positions(g.Points())); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	tx, ty := g.Translation()
	assert.Equal(t, 25.0, tx)
	assert.Equal(t, 25.0, ty)
}

func TestGrid_BuildIsIdempotent(t *testing.T) {
	g := NewGrid(DefaultGridConfig())
	g.Build()
	first := positions(g.Points())
	g.Build()

	assert.Len(t, g.Points(), 25)
	if diff := cmp.Diff(first, positions(g.Points())); diff != "" {
		t.Errorf("rebuild changed points (-first +second):\n%s", diff)
	}
}

func TestGrid_NoiseDisplacement(t *testing.T) {
	// Deterministic stand-in noise: depends on position only.
	noise := NoiseFunc(func(x, y, f, a float64) float64 {
		return a * math.Sin((x+2*y)*f)
	})

	cfg := DefaultGridConfig().WithColumns(3).WithRows(2).WithWidth(30).WithHeight(20).WithNoise(0.5, 4)
	g := NewGrid(cfg, WithNoiseSource(noise)).Build()

	for i, p := range g.Points() {
		bx := float64(i%3) * 10
		by := float64(i/3) * 10
		n := 4 * math.Sin((bx+2*by)*0.5)

		assert.InDelta(t, n, p.Noise, 1e-12, "noise of point %d", i)
		assert.InDelta(t, bx+n, p.X, 1e-12, "x of point %d", i)
		assert.InDelta(t, by+n, p.Y, 1e-12, "y of point %d", i)
		assert.Equal(t, p.X, p.InitialX)
	}

	nc, ok := g.Noise()
	require.True(t, ok)
	assert.Equal(t, 0.5, nc.Frequency)
}

func TestGrid_SimplexNoiseReproducible(t *testing.T) {
	cfg := DefaultGridConfig().WithNoise(0.002, 50)
	a := NewGrid(cfg).Build()
	b := NewGrid(cfg).Build()

	if diff := cmp.Diff(positions(a.Points()), positions(b.Points()), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("noise not reproducible:\n%s", diff)
	}
}

func TestGrid_ReconfigureDefersRebuild(t *testing.T) {
	g := NewGrid(DefaultGridConfig()).Build()
	g.Reconfigure(g.Config().WithColumns(2).WithRows(2))

	assert.Len(t, g.Points(), 25, "points kept until rebuild")
	cols, rows := g.Dims()
	assert.Equal(t, 5, cols)
	assert.Equal(t, 5, rows)

	g.Build()
	assert.Len(t, g.Points(), 4)
}

func TestGrid_ReconfigureKeepsTranslationUntilBuild(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 2, Rows: 1, Width: 100, Height: 50, Margin: 0.5}).Build()
	g.Reconfigure(g.Config().WithWidth(1000).WithColumns(4).WithNoise(0.01, 5))

	tx, ty := g.Translation()
	assert.Equal(t, 25.0, tx)
	assert.Equal(t, 25.0, ty)
	_, ok := g.Noise()
	assert.False(t, ok, "noise applies from the next build")

	s := &recordingSurface{}
	require.NoError(t, g.DrawPoints(s, PointStyle{Size: 1}))
	assert.Equal(t, 1, s.count("translate 25 25"), "old lattice drawn at its own offset")
	assert.Zero(t, s.count("translate 125 25"))

	g.Build()
	tx, ty = g.Translation()
	assert.Equal(t, 125.0, tx)
	assert.Equal(t, 25.0, ty)
	_, ok = g.Noise()
	assert.True(t, ok)
}

func TestGrid_MutatePoints(t *testing.T) {
	g := NewGrid(DefaultGridConfig().WithColumns(3).WithRows(3)).Build()
	before := positions(g.Points())

	noop := func(*Point) {}
	g.MutatePoints(noop).MutatePoints(noop)
	if diff := cmp.Diff(before, positions(g.Points())); diff != "" {
		t.Errorf("no-op mutation changed points:\n%s", diff)
	}

	var order []float64
	g.MutatePoints(func(p *Point) {
		order = append(order, p.InitialY*10+p.InitialX)
		p.X = p.InitialX + 1
	})
	assert.IsIncreasing(t, order, "mutation must run in index order")
	for _, p := range g.Points() {
		assert.Equal(t, p.InitialX+1, p.X)
	}
}

func TestGrid_RowAndDims(t *testing.T) {
	g := NewGrid(DefaultGridConfig().WithColumns(4).WithRows(2))
	assert.Nil(t, g.Row(0), "unbuilt grid has no rows")
	assert.False(t, g.Built())

	g.Build()
	assert.True(t, g.Built())
	assert.Len(t, g.Row(1), 4)
	assert.Same(t, g.Points()[4], g.Row(1)[0])
	assert.Nil(t, g.Row(2))
}

func TestGrid_DrawPointsBuildsLazily(t *testing.T) {
	g := NewGrid(DefaultGridConfig().WithColumns(2).WithRows(2).WithWidth(100).WithHeight(100))
	s := &recordingSurface{}

	shadow := NewShadow().Blur(4)
	require.NoError(t, g.DrawPoints(s, PointStyle{Size: 5, Shadow: &shadow}))

	assert.Len(t, g.Points(), 4)
	assert.Equal(t, 0, s.depth)
	assert.Equal(t, 4, s.count("fill"))
	assert.Equal(t, 1, s.count("shadow"))
	assert.Equal(t, 1, s.count("translate 25 25"))
	assert.Equal(t, defaultGridPointColor, s.fill)
}

func TestGrid_DrawRowLines(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 3, Rows: 2, Width: 30, Height: 20, Margin: 0.5}).Build()
	s := &recordingSurface{}

	require.NoError(t, g.DrawRowLines(s, LineStyle{}))

	want := []string{
		"M 0 0", "L 10 0", "L 20 0",
		"M 0 10", "L 10 10", "L 20 10",
	}
	if diff := cmp.Diff(want, s.pathOps()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, s.count("stroke"))
	assert.Equal(t, 0, s.depth)
	assert.Equal(t, defaultLineColor, s.stroke)
	assert.Equal(t, 4.0, s.width)
}

func TestGrid_DrawRowCurves(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 4, Rows: 1, Width: 40, Height: 10, Margin: 0.5}).Build()
	s := &recordingSurface{}

	require.NoError(t, g.DrawRowCurves(s, LineStyle{Color: color.White, Width: 2}))

	want := []string{
		"M 0 0",
		"Q 10 0 15 0",
		"Q 20 0 30 0",
	}
	if diff := cmp.Diff(want, s.pathOps()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, color.White, s.stroke)
	assert.Equal(t, 2.0, s.width)
}

func TestGrid_DrawSegmentRowCurves(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 3, Rows: 1, Width: 30, Height: 10, Margin: 0}).Build()
	g.Points()[0].Noise = -1
	g.Points()[1].Noise = 1

	var seen []float64
	style := SegmentStyle{
		Color: Computed(func(n float64) color.Color {
			seen = append(seen, n)
			if n < 0 {
				return color.Black
			}
			return color.White
		}),
		Width:    Computed(func(n float64) float64 { return n + 2 }),
		StretchX: 0.5,
		StretchY: 1,
	}

	s := &recordingSurface{}
	require.NoError(t, g.DrawSegmentRowCurves(s, style))

	want := []string{
		"M 0 0", "Q 0 0 5 0",
		"M 5 0", "Q 10 0 15 0",
	}
	if diff := cmp.Diff(want, s.pathOps()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []float64{-1, 1}, seen, "colour resolved from each segment's starting point")
	require.Len(t, s.strokes, 2)
	assert.Equal(t, color.Black, s.strokes[0].color)
	assert.Equal(t, 1.0, s.strokes[0].width)
	assert.Equal(t, color.White, s.strokes[1].color)
	assert.Equal(t, 3.0, s.strokes[1].width)
}

func TestGrid_DrawSegmentRowCurvesDefaults(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 2, Rows: 1, Width: 20, Height: 10}).Build()
	g.Points()[1].Y = 2

	s := &recordingSurface{}
	require.NoError(t, g.DrawSegmentRowCurves(s, SegmentStyle{Color: Constant[color.Color](color.White)}))

	// Endpoint is curr + delta*(0.8, 5.5).
	assert.Equal(t, []string{"M 0 0", "Q 0 0 8 11"}, s.pathOps())
	require.Len(t, s.strokes, 1)
	assert.Equal(t, defaultLineWidth, s.strokes[0].width)
}
