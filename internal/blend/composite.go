// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package blend

import "errors"

// ErrSizeMismatch is returned when source and destination buffers differ
// in length.
var ErrSizeMismatch = errors.New("blend: buffer size mismatch")

// Composite blends the premultiplied RGBA buffer src onto dst in place.
// opacity in [0, 1] scales the source before blending.
func Composite(dst, src []byte, mode Mode, opacity float64) error {
	if len(dst) != len(src) || len(dst)%4 != 0 {
		return ErrSizeMismatch
	}
	if opacity <= 0 {
		return nil
	}
	op := byte(255)
	if opacity < 1 {
		op = byte(opacity*255 + 0.5)
	}

	for i := 0; i < len(dst); i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		sr, sg, sb := src[i], src[i+1], src[i+2]
		if op != 255 {
			sr, sg, sb, sa = mulDiv255(sr, op), mulDiv255(sg, op), mulDiv255(sb, op), mulDiv255(sa, op)
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = mode.Pixel(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
	return nil
}
