// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/audio/playback"
	"github.com/sketchkit/sketchkit/sketches"
)

// feed pushes one frame's worth of decoded audio into an analyser per
// rendered frame, so recorded audio sketches follow the track in step with
// the frame rate rather than the wall clock.
type feed struct {
	an    *audio.Analyser
	tap   *audio.Tap
	chunk []byte
	done  bool
}

func newAnalyser(s sketches.Settings) (*audio.Analyser, error) {
	size := s.FFTSize
	if size == 0 {
		size = audio.DefaultFFTSize
	}
	smoothing := s.Smoothing
	if smoothing == 0 {
		smoothing = audio.DefaultSmoothing
	}
	return audio.NewAnalyser(size, audio.WithSmoothing(smoothing))
}

func openFeed(s sketches.Settings) (*feed, error) {
	data, err := os.ReadFile(s.AudioFile)
	if err != nil {
		return nil, fmt.Errorf("driver: audio: %w", err)
	}
	stream, err := playback.Decode(s.AudioFile, bytes.NewReader(data), audio.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	an, err := newAnalyser(s)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	fps := s.FPS
	if fps <= 0 {
		fps = sketches.DefaultFPS
	}
	frames := audio.SampleRate / fps

	sketchkit.Logger().Debug("driver: audio feed opened",
		"path", s.AudioFile, "samples_per_frame", frames, "fft_size", an.FFTSize())
	return &feed{
		an:    an,
		tap:   audio.NewTap(stream, an),
		chunk: make([]byte, frames*audio.BytesPerFrame),
	}, nil
}

// advance feeds the next frame of audio. After the track ends the analyser
// keeps its last window.
func (f *feed) advance() error {
	if f.done {
		return nil
	}
	_, err := io.ReadFull(f.tap, f.chunk)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		f.done = true
		sketchkit.Logger().Debug("driver: audio feed finished")
		return nil
	}
	if err != nil {
		return fmt.Errorf("driver: audio: %w", err)
	}
	return nil
}
