// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"

	"github.com/gogpu/gg/text"
)

type options struct {
	background color.Color
	fonts      *text.FontSource
}

// Option configures a Canvas.
type Option func(*options)

// WithBackground fills the canvas with c on creation.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontSource sets the font used by Text. By default Go Regular is
// loaded on first use.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.fonts = src
	}
}
