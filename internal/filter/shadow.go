// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/sketchkit/sketchkit/internal/blend"
)

// DropShadow is a blurred, tinted and offset copy of a shape's coverage.
type DropShadow struct {
	OffsetX, OffsetY float64
	// Sigma is the Gaussian standard deviation in pixels.
	Sigma float64
	Color color.NRGBA
}

// Bounds returns the region of the destination touched by the shadow of a
// shape covering r.
func (f DropShadow) Bounds(r image.Rectangle) image.Rectangle {
	pad := KernelRadius(f.Sigma)
	dx, dy := int(f.OffsetX), int(f.OffsetY)
	return image.Rect(
		r.Min.X+dx-pad, r.Min.Y+dy-pad,
		r.Max.X+dx+pad, r.Max.Y+dy+pad,
	)
}

// Apply composites the shadow of mask onto dst. Only the alpha channel of
// mask is used, and only the part of mask inside bounds is considered.
// Both pixmaps hold premultiplied RGBA and must have the same size.
//
// Apply reports whether any pixels were touched.
func (f DropShadow) Apply(mask, dst *gg.Pixmap, bounds image.Rectangle) bool {
	if mask == nil || dst == nil || f.Color.A == 0 {
		return false
	}

	canvas := image.Rect(0, 0, dst.Width(), dst.Height())
	area := f.Bounds(bounds).Intersect(canvas)
	if area.Empty() {
		return false
	}

	width, height := area.Dx(), area.Dy()
	alpha := make([]float32, width*height)
	extractAlpha(mask, alpha, area, bounds, int(f.OffsetX), int(f.OffsetY))

	if f.Sigma > 0 {
		blurred := make([]float32, len(alpha))
		blurAlpha(alpha, blurred, width, height, f.Sigma)
		alpha = blurred
	}

	composite(dst, alpha, area, f.Color)
	return true
}

// extractAlpha fills alpha with mask coverage for each pixel of area,
// sampling the mask at the position the offset shadow came from. Pixels
// outside src contribute nothing.
func extractAlpha(mask *gg.Pixmap, alpha []float32, area, src image.Rectangle, offsetX, offsetY int) {
	src = src.Intersect(image.Rect(0, 0, mask.Width(), mask.Height()))
	data := mask.Data()
	stride := mask.Width() * 4
	width := area.Dx()

	for y := area.Min.Y; y < area.Max.Y; y++ {
		sy := y - offsetY
		for x := area.Min.X; x < area.Max.X; x++ {
			sx := x - offsetX
			if !(image.Point{X: sx, Y: sy}).In(src) {
				continue
			}
			alpha[(y-area.Min.Y)*width+(x-area.Min.X)] = float32(data[sy*stride+sx*4+3]) / 255
		}
	}
}

// composite tints the coverage buffer with c and draws it source-over.
func composite(dst *gg.Pixmap, alpha []float32, area image.Rectangle, c color.NRGBA) {
	data := dst.Data()
	stride := dst.Width() * 4
	width := area.Dx()
	base := float32(c.A) / 255

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			a := alpha[(y-area.Min.Y)*width+(x-area.Min.X)] * base
			if a <= 0 {
				continue
			}
			sa := clampUint8(a * 255)
			sr := clampUint8(float32(c.R) * a)
			sg := clampUint8(float32(c.G) * a)
			sb := clampUint8(float32(c.B) * a)

			i := y*stride + x*4
			data[i], data[i+1], data[i+2], data[i+3] = blend.SourceOver.Pixel(
				sr, sg, sb, sa, data[i], data[i+1], data[i+2], data[i+3])
		}
	}
}
