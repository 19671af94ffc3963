// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package filter renders canvas-style drop shadows onto gg pixmaps.
//
// A shadow is produced from a coverage mask: the alpha channel is extracted
// with the shadow offset applied, blurred with a separable Gaussian, tinted
// with the shadow colour and composited source-over onto the destination.
package filter
