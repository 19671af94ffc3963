// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package blend

import "math"

// channelFunc is a blend function B(s, d) over straight-alpha channels.
type channelFunc func(s, d byte) byte

// channel returns the per-channel function for m, or nil for SourceOver.
func (m Mode) channel() channelFunc {
	switch m {
	case Multiply:
		return mulDiv255
	case Screen:
		return screen
	case Overlay:
		return func(s, d byte) byte { return hardLight(d, s) }
	case Darken:
		return minByte
	case Lighten:
		return maxByte
	case ColorDodge:
		return colorDodge
	case ColorBurn:
		return colorBurn
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return difference
	case Exclusion:
		return exclusion
	}
	return nil
}

// Pixel blends one premultiplied source pixel onto one premultiplied
// destination pixel.
//
// Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
func (m Mode) Pixel(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if rgb := m.nonSeparable(); rgb != nil {
		return blendRGB(sr, sg, sb, sa, dr, dg, db, da, rgb)
	}
	fn := m.channel()
	if fn == nil || da == 0 {
		return sourceOver(sr, sg, sb, sa, dr, dg, db, da)
	}
	if sa == 0 {
		return dr, dg, db, da
	}

	br := fn(unpremul(sr, sa), unpremul(dr, da))
	bg := fn(unpremul(sg, sa), unpremul(dg, da))
	bb := fn(unpremul(sb, sa), unpremul(db, da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	r := addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, br))
	g := addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, bg))
	b := addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, bb))
	a := addClamp(sa, mulDiv255(da, invSa))
	return r, g, b, a
}

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

func screen(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLight is multiply below half source intensity and screen above.
func hardLight(s, d byte) byte {
	if s <= 128 {
		return byte(math.Min(255, float64(2*uint16(s)*uint16(d))/255))
	}
	return 255 - byte(math.Min(255, float64(2*uint16(255-s)*uint16(255-d))/255))
}

// colorDodge: Cs == 1 ? 1 : min(1, Cb / (1 - Cs)).
func colorDodge(s, d byte) byte {
	if d == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	v := (uint16(d) * 255) / uint16(255-s)
	if v > 255 {
		return 255
	}
	return byte(v)
}

// colorBurn: Cb == 1 ? 1 : Cs == 0 ? 0 : 1 - min(1, (1 - Cb) / Cs).
func colorBurn(s, d byte) byte {
	if d == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	v := (uint16(255-d) * 255) / uint16(s)
	if v > 255 {
		return 0
	}
	return 255 - byte(v)
}

func softLight(s, d byte) byte {
	sf := float64(s) / 255
	df := float64(d) / 255

	var r float64
	if sf <= 0.5 {
		r = df - (1-2*sf)*df*(1-df)
	} else {
		dx := math.Sqrt(df)
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		}
		r = df + (2*sf-1)*(dx-df)
	}
	return byte(math.Round(math.Max(0, math.Min(1, r)) * 255))
}

func difference(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
}

func exclusion(s, d byte) byte {
	v := int(s) + int(d) - 2*int(mulDiv255(s, d))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
