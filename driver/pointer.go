// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package driver

import "github.com/sketchkit/sketchkit"

// pointerTracker turns polled mouse state into pointer events.
type pointerTracker struct {
	down bool
	x, y int
	seen bool
}

// update compares the button and cursor with the previous tick and
// dispatches down, move and up events to in.
func (t *pointerTracker) update(in *sketchkit.PointerInput, pressed bool, x, y int) {
	moved := !t.seen || x != t.x || y != t.y
	fx, fy := float64(x), float64(y)

	switch {
	case pressed && !t.down:
		in.Down(fx, fy)
	case !pressed && t.down:
		in.Up(fx, fy)
	case moved:
		in.Move(fx, fy)
	}

	t.down = pressed
	t.x, t.y = x, y
	t.seen = true
}
