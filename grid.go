// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

// GridConfig describes a rectangular lattice. It is a value type; the
// With* methods return modified copies and never touch a built Grid.
//
//	cfg := sketchkit.DefaultGridConfig().
//		WithColumns(72).
//		WithRows(8).
//		WithWidth(1080).
//		WithHeight(1080)
type GridConfig struct {
	Columns, Rows int
	Width, Height float64

	// Margin is the fraction of a cell used to offset the lattice from its
	// footprint's top-left corner. 0.5 centres it.
	Margin float64

	// Noise, when set, displaces every point at build time.
	Noise *NoiseConfig
}

// DefaultGridConfig returns a 5x5 grid over a 300x300 footprint, centred.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Columns: 5,
		Rows:    5,
		Width:   300,
		Height:  300,
		Margin:  0.5,
	}
}

// WithColumns returns a copy with the column count set.
func (c GridConfig) WithColumns(n int) GridConfig {
	c.Columns = n
	return c
}

// WithRows returns a copy with the row count set.
func (c GridConfig) WithRows(n int) GridConfig {
	c.Rows = n
	return c
}

// WithWidth returns a copy with the footprint width set.
func (c GridConfig) WithWidth(w float64) GridConfig {
	c.Width = w
	return c
}

// WithHeight returns a copy with the footprint height set.
func (c GridConfig) WithHeight(h float64) GridConfig {
	c.Height = h
	return c
}

// WithMargin returns a copy with the centering factor set.
func (c GridConfig) WithMargin(m float64) GridConfig {
	c.Margin = m
	return c
}

// WithNoise returns a copy that displaces points by coherent noise.
func (c GridConfig) WithNoise(frequency, amplitude float64) GridConfig {
	c.Noise = &NoiseConfig{Frequency: frequency, Amplitude: amplitude}
	return c
}

// CellSize returns the width and height of one cell.
// Non-positive column or row counts are treated as 1.
func (c GridConfig) CellSize() (w, h float64) {
	cols, rows := c.dims()
	return c.Width / float64(cols), c.Height / float64(rows)
}

// Translation returns the offset that centres the lattice over its footprint.
func (c GridConfig) Translation() (x, y float64) {
	cw, ch := c.CellSize()
	return cw * c.Margin, ch * c.Margin
}

func (c GridConfig) dims() (cols, rows int) {
	cols, rows = c.Columns, c.Rows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// GridOption configures a Grid during creation.
type GridOption func(*gridOptions)

type gridOptions struct {
	noise Noise
}

// WithNoiseSource sets the coherent noise used to displace points.
// The default is DefaultNoise.
func WithNoiseSource(n Noise) GridOption {
	return func(o *gridOptions) {
		o.noise = n
	}
}

// Grid is a rectangular lattice of Points with layout and drawing helpers.
//
// A Grid starts unbuilt. Build materialises the points; the drawing methods
// build lazily while the grid is still empty. Grid is not safe for
// concurrent use.
type Grid struct {
	cfg    GridConfig
	noise  Noise
	points []*Point

	// layout of the current points, fixed at Build
	layout     GridConfig
	cols, rows int
}

// NewGrid creates an unbuilt grid.
func NewGrid(cfg GridConfig, opts ...GridOption) *Grid {
	o := gridOptions{noise: DefaultNoise()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Grid{cfg: cfg, noise: o.noise}
}

// Config returns the grid configuration.
func (g *Grid) Config() GridConfig { return g.cfg }

// Reconfigure replaces the configuration. Existing points, their
// translation and noise settings are kept until the next Build.
func (g *Grid) Reconfigure(cfg GridConfig) {
	g.cfg = cfg
}

// Built reports whether the grid has points.
func (g *Grid) Built() bool { return len(g.points) > 0 }

// Build lays out Columns*Rows points in row-major order, replacing any
// previous points.
//
// With noise configured, both coordinates of a point are displaced by the
// same sample taken at its base position, and the sample is stored on the
// point. Noise depends on position only, so a static grid is reproducible.
func (g *Grid) Build() *Grid {
	cols, rows := g.cfg.dims()
	cw, ch := g.cfg.CellSize()

	g.layout = g.cfg
	g.cols, g.rows = cols, rows
	g.points = make([]*Point, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		x := float64(i%cols) * cw
		y := float64(i/cols) * ch

		var n float64
		if nc := g.cfg.Noise; nc != nil {
			n = g.noise.Noise2D(x, y, nc.Frequency, nc.Amplitude)
			x += n
			y += n
		}

		g.points = append(g.points, NewPoint(x, y, WithNoise(n)))
	}

	Logger().Debug("sketchkit: grid built", "columns", cols, "rows", rows, "points", len(g.points), "noise", g.cfg.Noise != nil)
	return g
}

func (g *Grid) ensureBuilt() {
	if len(g.points) == 0 {
		g.Build()
	}
}

// MutatePoints applies fn to every point in index order.
func (g *Grid) MutatePoints(fn func(*Point)) *Grid {
	for _, p := range g.points {
		fn(p)
	}
	return g
}

// Points returns the points in row-major order.
// The slice is owned by the grid.
func (g *Grid) Points() []*Point { return g.points }

// Row returns the points of row r. It returns nil if the grid is unbuilt or
// r is out of range.
func (g *Grid) Row(r int) []*Point {
	if r < 0 || r >= g.rows {
		return nil
	}
	return g.points[r*g.cols : (r+1)*g.cols]
}

// Dims returns the column and row counts of the current points.
func (g *Grid) Dims() (cols, rows int) { return g.cols, g.rows }

// current returns the layout of the built points, or the pending
// configuration while the grid is unbuilt.
func (g *Grid) current() GridConfig {
	if g.Built() {
		return g.layout
	}
	return g.cfg
}

// Translation returns the centering offset applied before drawing.
func (g *Grid) Translation() (x, y float64) { return g.current().Translation() }

// Noise returns the noise configuration of the current points, if any.
func (g *Grid) Noise() (NoiseConfig, bool) {
	nc := g.current().Noise
	if nc == nil {
		return NoiseConfig{}, false
	}
	return *nc, true
}
