// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package sketches holds the generative sketches and the registry the
// drivers look them up in.
//
// A [Sketch] pairs default [Settings] with a [SetupFunc]. Setup runs once
// with the canvas size and pointer input, builds whatever geometry the
// sketch needs and returns a [RenderFunc] that draws one [Frame]:
//
//	s, err := sketches.Get("curves")
//	if err != nil {
//		return err
//	}
//	render, err := s.Setup(sketches.Env{Width: 1000, Height: 1000, Input: in, Settings: s.Settings})
//	...
//	err = render(sketches.Frame{Canvas: c, Width: 1000, Height: 1000})
//
// Every sketch in this package registers itself from init.
package sketches
