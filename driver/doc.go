// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package driver runs sketches.
//
// A [Recorder] renders frames headlessly to PNG files, feeding the audio
// track to the analyser at the frame rate so audio sketches can be
// recorded too. A [Window] runs a sketch interactively in an ebiten game
// loop, forwarding the mouse as pointer input and playing audio.
package driver
