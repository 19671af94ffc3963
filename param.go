// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "image/color"

// Param is a style parameter that is either a constant or computed from a
// point's noise sample.
type Param[T any] struct {
	value T
	fn    func(noise float64) T
}

// Constant returns a Param that always resolves to v.
func Constant[T any](v T) Param[T] {
	return Param[T]{value: v}
}

// Computed returns a Param resolved by calling fn with the noise sample.
func Computed[T any](fn func(noise float64) T) Param[T] {
	return Param[T]{fn: fn}
}

// IsComputed reports whether the parameter depends on noise.
func (p Param[T]) IsComputed() bool { return p.fn != nil }

// Resolve returns the parameter value for the given noise sample.
func (p Param[T]) Resolve(noise float64) T {
	if p.fn != nil {
		return p.fn(noise)
	}
	return p.value
}

// ColorParam is a colour that may depend on noise.
type ColorParam = Param[color.Color]

// WidthParam is a line width that may depend on noise.
type WidthParam = Param[float64]
