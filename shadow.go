// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "image/color"

// Shadow describes a drop shadow applied to subsequent fills and strokes.
//
// The zero value has a transparent colour and draws nothing. Shadow is a
// value type: each builder method returns a modified copy, so a partially
// configured shadow can be shared and extended freely.
//
//	sketchkit.NewShadow().
//		Color(sketchkit.DeriveShade(fill, -20, 0.8)).
//		OffsetX(-10).
//		OffsetY(20).
//		Blur(8).
//		Apply(s)
type Shadow struct {
	ShadowColor color.Color
	DX, DY      float64
	BlurRadius  float64
}

// NewShadow returns an opaque black shadow with no offset or blur.
func NewShadow() Shadow {
	return Shadow{ShadowColor: color.NRGBA{A: 0xff}}
}

// Color returns a copy with the shadow colour set.
func (s Shadow) Color(c color.Color) Shadow {
	s.ShadowColor = c
	return s
}

// OffsetX returns a copy with the horizontal offset set, in device pixels.
func (s Shadow) OffsetX(v float64) Shadow {
	s.DX = v
	return s
}

// OffsetY returns a copy with the vertical offset set, in device pixels.
func (s Shadow) OffsetY(v float64) Shadow {
	s.DY = v
	return s
}

// Blur returns a copy with the blur amount set. As with canvas shadowBlur,
// the Gaussian standard deviation is half of v.
func (s Shadow) Blur(v float64) Shadow {
	if v < 0 {
		v = 0
	}
	s.BlurRadius = v
	return s
}

// Visible reports whether the shadow would draw anything.
func (s Shadow) Visible() bool {
	if s.ShadowColor == nil {
		return false
	}
	_, _, _, a := s.ShadowColor.RGBA()
	return a > 0
}

// Apply sets the shadow on the surface. It does not restore anything;
// wrap the drawing in Scoped to limit its extent.
func (s Shadow) Apply(surface Surface) {
	surface.SetShadow(s)
}
