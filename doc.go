// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package sketchkit is a small toolkit for interactive generative-art
// sketches: draggable points, noise-displaced grids and the geometry and
// colour helpers that sketches share.
//
// # Overview
//
// A sketch builds its scene once during setup and redraws it every frame:
//
//	grid := sketchkit.NewGrid(sketchkit.DefaultGridConfig().
//		WithColumns(10).
//		WithRows(10).
//		WithWidth(1080).
//		WithHeight(1080))
//
//	render := func(s sketchkit.Surface) error {
//		return grid.DrawPoints(s, sketchkit.PointStyle{Size: 5})
//	}
//
// Drawing goes through the [Surface] interface, which has HTML-canvas
// semantics. The canvas sub-package implements it on top of gg.
//
// # Interaction
//
// [Attach] wires a point collection to pointer events. A pointer-down within
// [HitRadius] of a point starts a [DragSession]; moves update the grabbed
// points until the next pointer-up:
//
//	points := sketchkit.NewPointList(sketchkit.NewPoint(200, 540))
//	ctrl := sketchkit.Attach(input, points,
//		sketchkit.WithMissHandler(func(x, y float64) {
//			points.Append(sketchkit.NewPoint(x, y))
//		}))
//	defer ctrl.Detach()
//
// # State discipline
//
// Every drawing helper in this package saves the surface state before
// changing it and restores it on return. Use [Scoped] to do the same in
// sketch code.
//
// # Coordinate system
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in degrees for the helpers taking degrees, measured clockwise
//
// # Logging
//
// sketchkit logs through log/slog and is silent by default. See [SetLogger].
package sketchkit
