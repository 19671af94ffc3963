// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package blend

import "math"

// rgbFunc blends straight-alpha colours with components in [0, 1].
type rgbFunc func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64)

// nonSeparable returns the whole-colour function for m, or nil for the
// separable modes.
func (m Mode) nonSeparable() rgbFunc {
	switch m {
	case Hue:
		return func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
			r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
			return setLum(r, g, b, lum(dr, dg, db))
		}
	case Saturation:
		return func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
			r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
			return setLum(r, g, b, lum(dr, dg, db))
		}
	case Color:
		return func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
			return setLum(sr, sg, sb, lum(dr, dg, db))
		}
	case Luminosity:
		return func(sr, sg, sb, dr, dg, db float64) (float64, float64, float64) {
			return setLum(dr, dg, db, lum(sr, sg, sb))
		}
	}
	return nil
}

// blendRGB applies fn with the same source-over weighting as the separable
// modes.
func blendRGB(sr, sg, sb, sa, dr, dg, db, da byte, fn rgbFunc) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sourceOver(sr, sg, sb, sa, dr, dg, db, da)
	}

	unit := func(c, a byte) float64 { return float64(unpremul(c, a)) / 255 }
	br, bg, bb := fn(unit(sr, sa), unit(sg, sa), unit(sb, sa), unit(dr, da), unit(dg, da), unit(db, da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)
	mix := func(s, d byte, b float64) byte {
		v := byte(math.Round(math.Max(0, math.Min(1, b)) * 255))
		return addClamp(addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa)), mulDiv255(saDa, v))
	}
	return mix(sr, dr, br), mix(sg, dg, bg), mix(sb, db, bb), addClamp(sa, mulDiv255(da, invSa))
}

func lum(r, g, b float64) float64 {
	return 0.30*r + 0.59*g + 0.11*b
}

func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

// clipColor pulls an out-of-gamut colour back into [0, 1] keeping its
// luminosity.
func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := math.Min(r, math.Min(g, b))
	x := math.Max(r, math.Max(g, b))
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float64) (float64, float64, float64) {
	c := [3]float64{r, g, b}
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}

	if c[hi] > c[lo] {
		c[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		c[hi] = s
	} else {
		c[mid], c[hi] = 0, 0
	}
	c[lo] = 0
	return c[0], c[1], c[2]
}
