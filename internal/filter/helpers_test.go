// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"image"

	"github.com/gogpu/gg"
)

// squareMask returns a w*h pixmap with an opaque black square covering r.
func squareMask(w, h int, r image.Rectangle) *gg.Pixmap {
	p := gg.NewPixmap(w, h)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.SetPixel(x, y, gg.RGBA{A: 1})
		}
	}
	return p
}

// alphaAt returns the alpha byte of pixel (x, y).
func alphaAt(p *gg.Pixmap, x, y int) uint8 {
	return p.Data()[(y*p.Width()+x)*4+3]
}
