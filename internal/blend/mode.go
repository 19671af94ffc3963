// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package blend composites premultiplied RGBA pixels with the separable
// and non-separable blend modes of W3C Compositing and Blending Level 1.
//
// Mode names follow the canvas globalCompositeOperation keywords, so a
// sketch can write "color-burn" or "overlay".
package blend

import (
	"errors"
	"fmt"
)

// Mode is a blend mode.
type Mode int

// Blend modes.
const (
	SourceOver Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
)

// ErrUnknownMode is returned by ParseMode for unsupported names.
var ErrUnknownMode = errors.New("blend: unknown mode")

var modeNames = [...]string{
	SourceOver: "source-over",
	Multiply:   "multiply",
	Screen:     "screen",
	Overlay:    "overlay",
	Darken:     "darken",
	Lighten:    "lighten",
	ColorDodge: "color-dodge",
	ColorBurn:  "color-burn",
	HardLight:  "hard-light",
	SoftLight:  "soft-light",
	Difference: "difference",
	Exclusion:  "exclusion",
	Hue:        "hue",
	Saturation: "saturation",
	Color:      "color",
	Luminosity: "luminosity",
}

// String returns the canvas keyword for m.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes returns every supported mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode returns the mode for a canvas keyword. "normal" is accepted as
// an alias of "source-over".
func ParseMode(name string) (Mode, error) {
	if name == "normal" {
		return SourceOver, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return SourceOver, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
