// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package playback

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
)

// Track is a looping audio file whose output is fed to an Analyser.
type Track struct {
	name   string
	player *ebitenaudio.Player
}

// OpenTrack loads the audio file at path and prepares it for playback on
// ctx. Decoded samples pass through an audio.Tap feeding an on their way to
// the speakers.
// The track starts paused.
func OpenTrack(ctx *ebitenaudio.Context, path string, an *audio.Analyser) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("playback: read %s: %w", path, err)
	}

	stream, err := Decode(path, bytes.NewReader(data), ctx.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("playback: decode %s: %w", path, err)
	}

	loop := ebitenaudio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(audio.NewTap(loop, an))
	if err != nil {
		return nil, fmt.Errorf("playback: player: %w", err)
	}

	sketchkit.Logger().Info("playback: track loaded",
		"path", path, "bytes", stream.Length(), "sample_rate", ctx.SampleRate())
	return &Track{name: filepath.Base(path), player: player}, nil
}

// Name returns the file name of the track.
func (t *Track) Name() string { return t.name }

// Play starts or resumes playback.
func (t *Track) Play() { t.player.Play() }

// Pause pauses playback.
func (t *Track) Pause() { t.player.Pause() }

// IsPlaying reports whether the track is playing.
func (t *Track) IsPlaying() bool { return t.player.IsPlaying() }

// Toggle flips between playing and paused and reports the new state.
func (t *Track) Toggle() bool {
	if t.player.IsPlaying() {
		t.player.Pause()
		return false
	}
	t.player.Play()
	return true
}

// Close stops playback and releases the player.
func (t *Track) Close() error {
	return t.player.Close()
}
