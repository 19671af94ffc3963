// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package playback decodes audio files and plays them through ebiten while
// an [audio.Analyser] listens in.
//
// It is split from package audio so the analysis side builds without the
// platform audio drivers ebiten needs for output.
package playback
