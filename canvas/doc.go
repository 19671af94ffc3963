// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package canvas implements [sketchkit.Surface] on top of gg.
//
// gg keeps only the transform, clip and mask on its state stack and shares
// one brush between fill and stroke. Canvas adds the rest of an HTML canvas
// state on top: separate fill and stroke colours, line width, drop shadow
// and composite operation are all saved by Save and restored by Restore.
// Paths survive Fill and Stroke until the next BeginPath.
//
// Shadows are rendered by replaying the current path onto a scratch
// coverage mask and blurring it. Composite operations other than
// "source-over" draw into a gg layer which is then blended onto the
// backdrop with the W3C separable blend formulas.
//
//	c := canvas.New(1080, 1080, canvas.WithBackground(color.White))
//	c.SetFillColor(color.Black)
//	c.BeginPath()
//	c.Arc(540, 540, 100, 0, 2*math.Pi)
//	if err := c.Fill(); err != nil {
//		return err
//	}
//	return c.SavePNG("out.png")
package canvas
