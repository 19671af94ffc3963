// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package blend

// div255 divides x by 255 using the shift approximation (x + 255) >> 8.
// For products of two bytes the result stays within [0, 255].
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unpremul converts a premultiplied channel to straight alpha.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c) * 255) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
