// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "github.com/ojrac/opensimplex-go"

// Noise is a coherent 2D noise function.
// Implementations must be deterministic for fixed inputs.
type Noise interface {
	Noise2D(x, y, frequency, amplitude float64) float64
}

// NoiseFunc adapts a plain function to the Noise interface.
type NoiseFunc func(x, y, frequency, amplitude float64) float64

// Noise2D calls f.
func (f NoiseFunc) Noise2D(x, y, frequency, amplitude float64) float64 {
	return f(x, y, frequency, amplitude)
}

// NoiseConfig scales noise input and output.
type NoiseConfig struct {
	Frequency float64
	Amplitude float64
}

// SimplexNoise is seeded OpenSimplex noise. Output lies in
// [-amplitude, amplitude].
type SimplexNoise struct {
	seed int64
	src  opensimplex.Noise
}

// NewSimplexNoise creates simplex noise for the given seed.
func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{seed: seed, src: opensimplex.New(seed)}
}

// Seed returns the seed the noise was created with.
func (n *SimplexNoise) Seed() int64 { return n.seed }

// Noise2D samples the noise at (x*frequency, y*frequency) scaled by amplitude.
func (n *SimplexNoise) Noise2D(x, y, frequency, amplitude float64) float64 {
	return amplitude * n.src.Eval2(x*frequency, y*frequency)
}

var defaultNoise Noise = NewSimplexNoise(0)

// DefaultNoise returns the shared seed-0 simplex noise used when no source
// is configured.
func DefaultNoise() Noise { return defaultNoise }
