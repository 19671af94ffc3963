// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"time"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/canvas"
)

// Settings are the per-sketch defaults a driver starts from. Configuration
// files and command flags override them.
type Settings struct {
	Width, Height int

	// Animate asks the driver to render continuously. Static sketches are
	// rendered once.
	Animate bool
	FPS     int

	// Seed drives every random choice a sketch makes.
	Seed uint64

	// Audio marks sketches that visualise an audio track. AudioFile is the
	// track to play; FFTSize and Smoothing configure its analyser.
	Audio     bool
	AudioFile string
	FFTSize   int
	Smoothing float64
}

// FrameDuration returns the time between frames, defaulting to 60 fps.
func (s Settings) FrameDuration() time.Duration {
	fps := s.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// DefaultFPS is used when Settings.FPS is not set.
const DefaultFPS = 60

// Env is what a sketch sees during setup.
type Env struct {
	Width, Height int

	// Input delivers pointer events in device coordinates. Sketches attach
	// point controllers to it.
	Input sketchkit.Input

	Settings Settings
}

// Frame is one render tick.
type Frame struct {
	Canvas        *canvas.Canvas
	Width, Height int

	// Index counts frames from zero; Time is Index times the frame
	// duration.
	Index int
	Time  time.Duration

	// Analyser is nil until audio is playing. Audio sketches draw only
	// their background without it.
	Analyser *audio.Analyser
}

// RenderFunc draws a frame.
type RenderFunc func(f Frame) error

// SetupFunc prepares a sketch and returns its render function.
type SetupFunc func(env Env) (RenderFunc, error)

// Sketch is a registered drawing routine.
type Sketch struct {
	Name        string
	Description string
	Settings    Settings
	Setup       SetupFunc
}
