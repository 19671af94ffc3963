// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"math"
	"testing"
)

func TestBlurAlphaPreservesUniform(t *testing.T) {
	const w, h = 8, 6
	src := make([]float32, w*h)
	for i := range src {
		src[i] = 0.5
	}
	dst := make([]float32, w*h)
	blurAlpha(src, dst, w, h, 2)

	for i, v := range dst {
		if math.Abs(float64(v)-0.5) > 1e-4 {
			t.Fatalf("dst[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestBlurAlphaConservesImpulse(t *testing.T) {
	const w, h = 31, 31
	src := make([]float32, w*h)
	src[15*w+15] = 1
	dst := make([]float32, w*h)
	blurAlpha(src, dst, w, h, 1.5)

	var sum float64
	for _, v := range dst {
		sum += float64(v)
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("total coverage = %v, want 1", sum)
	}
	if dst[15*w+15] <= dst[15*w+16] {
		t.Error("impulse peak should stay at the centre")
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{-1, 0, 9, 0},
		{5, 0, 9, 5},
		{12, 0, 9, 9},
	}
	for _, tt := range tests {
		if got := clampInt(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampUint8(t *testing.T) {
	tests := []struct {
		v    float32
		want uint8
	}{
		{-3, 0},
		{0.4, 0},
		{127.5, 128},
		{254.6, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampUint8(tt.v); got != tt.want {
			t.Errorf("clampUint8(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
