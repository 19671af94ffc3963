// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognised tokens.
var ErrInvalidColor = errors.New("sketchkit: invalid color")

// ParseColor converts a colour token into a colour.
//
// Accepted tokens are CSS colour names ("black", "rebeccapurple"),
// "transparent", and hex in the forms #rgb, #rrggbb and #rrggbbaa.
func ParseColor(token string) (color.NRGBA, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[t]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(t, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}

	alpha := uint8(0xff)
	if len(t) == 9 {
		a, err := strconv.ParseUint(t[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		alpha = uint8(a)
		t = t[:7]
	}

	c, err := colorful.Hex(t)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for palette literals.
func MustParseColor(token string) color.NRGBA {
	c, err := ParseColor(token)
	if err != nil {
		panic(err)
	}
	return c
}

// DeriveShade shifts the HSL lightness of c by lumDelta percentage points
// and replaces its alpha with alpha in [0, 1].
//
// A zero delta keeps the RGB channels exactly, so DeriveShade(c, 0, 1) is c
// made opaque.
func DeriveShade(c color.Color, lumDelta, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := uint8(math.Round(clamp01(alpha) * 255))

	if lumDelta == 0 {
		return color.NRGBA{R: n.R, G: n.G, B: n.B, A: a}
	}

	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	h, s, l := cf.Hsl()
	l = clamp01(l + lumDelta/100)

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Colormap is a fixed ramp of colours sampled from a gradient.
type Colormap struct {
	shades []color.NRGBA
}

var colormapStops = map[string][]string{
	"cool":    {"#00ffff", "#ff00ff"},
	"hot":     {"#000000", "#e60000", "#ffd200", "#ffffff"},
	"greys":   {"#000000", "#ffffff"},
	"viridis": {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
}

// ColormapNames returns the names accepted by NewColormap.
func ColormapNames() []string {
	return []string{"cool", "greys", "hot", "viridis"}
}

// NewColormap samples the named gradient into shades colours.
// Shades below 2 are raised to 2.
func NewColormap(name string, shades int) (Colormap, error) {
	tokens, ok := colormapStops[name]
	if !ok {
		return Colormap{}, fmt.Errorf("sketchkit: unknown colormap %q", name)
	}
	if shades < 2 {
		shades = 2
	}

	stops := make([]colorful.Color, len(tokens))
	for i, tok := range tokens {
		c, err := colorful.Hex(tok)
		if err != nil {
			return Colormap{}, fmt.Errorf("sketchkit: colormap %q: %w", name, err)
		}
		stops[i] = c
	}

	out := make([]color.NRGBA, shades)
	segments := float64(len(stops) - 1)
	for i := range out {
		t := float64(i) / float64(shades-1) * segments
		k := int(math.Min(math.Floor(t), segments-1))
		c := stops[k].BlendRgb(stops[k+1], t-float64(k)).Clamped()
		r, g, b := c.RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return Colormap{shades: out}, nil
}

// Len returns the number of shades.
func (m Colormap) Len() int { return len(m.shades) }

// At returns shade i, clamped to the valid range.
func (m Colormap) At(i int) color.NRGBA {
	if len(m.shades) == 0 {
		return color.NRGBA{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.shades) {
		i = len(m.shades) - 1
	}
	return m.shades[i]
}

// Sample maps v from [lo, hi] onto the ramp.
func (m Colormap) Sample(v, lo, hi float64) color.NRGBA {
	idx := MapRange(v, lo, hi, 0, float64(len(m.shades)-1), true)
	return m.At(int(math.Floor(idx)))
}
