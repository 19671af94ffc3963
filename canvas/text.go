// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sketchkit/sketchkit/internal/cache"
)

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// faceKey identifies a face by its font and size.
type faceKey struct {
	src  *text.FontSource
	size float64
}

// faces is shared by every canvas; sketches that animate text size would
// otherwise grow it without bound.
var faces = cache.New[faceKey, text.Face](64)

func (c *Canvas) face(size float64) (text.Face, error) {
	if c.fonts == nil {
		src, err := goRegular()
		if err != nil {
			return nil, fmt.Errorf("canvas: load font: %w", err)
		}
		c.fonts = src
	}
	src := c.fonts
	return faces.GetOrCreate(faceKey{src, size}, func() text.Face {
		return src.Face(size)
	}), nil
}

// Text draws s with the fill colour, its baseline starting at (x, y).
// The position follows the transform; the glyphs themselves are not
// rotated or scaled.
func (c *Canvas) Text(s string, x, y, size float64) error {
	f, err := c.face(size)
	if err != nil {
		return err
	}
	dx, dy := c.dc.TransformPoint(x, y)
	c.dc.SetFont(f)
	c.dc.SetColor(c.state.fill)
	c.dc.DrawString(s, dx, dy)
	return nil
}

// MeasureText returns the advance width and height of s at size.
func (c *Canvas) MeasureText(s string, size float64) (w, h float64, err error) {
	f, err := c.face(size)
	if err != nil {
		return 0, 0, err
	}
	c.dc.SetFont(f)
	w, h = c.dc.MeasureString(s)
	return w, h, nil
}
