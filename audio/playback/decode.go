// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package playback

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedFormat is returned for audio files other than MP3 and WAV.
var ErrUnsupportedFormat = errors.New("playback: unsupported format")

// Stream is decoded 16-bit little-endian stereo PCM.
type Stream interface {
	io.ReadSeeker
	Length() int64
}

// Decode decodes MP3 or WAV data, chosen by the file extension in name,
// resampled to sampleRate.
func Decode(name string, src io.Reader, sampleRate int) (Stream, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
