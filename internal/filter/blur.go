// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package filter

// blurAlpha applies a separable Gaussian blur to a single-channel buffer of
// width*height values, writing the result to dst. Edges are extended.
func blurAlpha(src, dst []float32, width, height int, sigma float64) {
	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2
	temp := make([]float32, width*height)

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float32
			for k, w := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				sum += src[row+kx] * w
			}
			temp[row+x] = sum
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, w := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				sum += temp[ky*width+x] * w
			}
			dst[y*width+x] = sum
		}
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds v to the nearest byte in [0, 255].
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
