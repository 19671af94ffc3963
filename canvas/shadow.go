// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/internal/filter"
)

// scale returns the area scale factor of the current transform, used to
// convert line widths to device pixels.
func (c *Canvas) scale() float64 {
	m := c.dc.GetTransform()
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// mask returns the scratch context used to rasterise shadow coverage,
// cleared and reset to identity.
func (c *Canvas) mask() *gg.Context {
	if c.scratch == nil {
		c.scratch = gg.NewContext(c.dc.Width(), c.dc.Height())
	}
	c.scratch.Clear()
	c.scratch.Identity()
	c.scratch.ClearPath()
	return c.scratch
}

// drawShadow composites the shadow of the current path onto target.
// As on an HTML canvas, a shadow with no blur and no offset draws nothing,
// and the shadow alpha is scaled by the alpha of the paint colour.
func (c *Canvas) drawShadow(col color.Color, stroke bool, target *gg.Pixmap) {
	sh := c.state.shadow
	if !sh.Visible() || (sh.BlurRadius == 0 && sh.DX == 0 && sh.DY == 0) {
		return
	}
	_, _, _, a := col.RGBA()
	if a == 0 {
		return
	}

	pad := 1.0
	width := c.state.lineWidth * c.scale()
	if stroke {
		pad += width / 2
	}
	bounds := c.path.bounds(pad)

	m := c.mask()
	c.path.replay(m)
	m.SetColor(color.NRGBA{A: uint8(a >> 8)})

	var err error
	if stroke {
		m.SetLineWidth(width)
		err = m.Stroke()
	} else {
		err = m.Fill()
	}
	if err != nil {
		sketchkit.Logger().Warn("canvas: shadow mask failed", "error", err)
		return
	}

	f := filter.DropShadow{
		OffsetX: sh.DX,
		OffsetY: sh.DY,
		Sigma:   sh.BlurRadius / 2,
		Color:   color.NRGBAModel.Convert(sh.ShadowColor).(color.NRGBA),
	}
	f.Apply(m.ResizeTarget(), target, bounds)
}
