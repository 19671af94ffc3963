// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"math"
	"sync"
)

// KernelRadius returns the half width of the Gaussian kernel for sigma.
// Three standard deviations cover 99.7% of the distribution.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// GaussianKernel returns a normalised 1D Gaussian kernel of size
// 2*KernelRadius(sigma)+1. For sigma <= 0 it returns the identity [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := KernelRadius(sigma)
	kernel := make([]float32, half*2+1)
	twoSigmaSq := 2 * sigma * sigma

	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache memoises kernels keyed by sigma at 0.01 precision.
// Sketches reuse a handful of blur values every frame.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
	max     int
}

var kernels = &kernelCache{kernels: make(map[int][]float32), max: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.kernels) >= c.max {
		clear(c.kernels)
	}
	c.kernels[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel is GaussianKernel backed by a shared cache.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	return kernels.get(sigma)
}
