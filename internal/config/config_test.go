// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchkit/sketchkit/sketches"
)

func TestParse_MergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[defaults]
frames = 12

[sketch.animation]
width = 540
seed = 7
audio = "song.wav"
smoothing = 0.5
`))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Defaults.Output, "unset keys keep their default")
	assert.Equal(t, 12, cfg.Defaults.Frames)
	assert.Equal(t, 1.0, cfg.Defaults.Scale)

	base := sketches.Settings{Width: 1080, Height: 1080, FPS: 60, Seed: 1, FFTSize: 512, Smoothing: 0.9}
	got := cfg.Settings("animation", base)
	want := sketches.Settings{
		Width: 540, Height: 1080, FPS: 60, Seed: 7,
		AudioFile: "song.wav", FFTSize: 512, Smoothing: 0.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, base, cfg.Settings("grid", base), "sketches without a table are untouched")
}

func TestParse_SeedZeroIsAnOverride(t *testing.T) {
	cfg, err := Parse([]byte("[sketch.triangle]\nseed = 0\n"))
	require.NoError(t, err)
	got := cfg.Settings("triangle", sketches.Settings{Seed: 1})
	assert.Equal(t, uint64(0), got.Seed)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want error
	}{
		{"unknown key", "[defaults]\ncolour = \"red\"\n", ErrUnknownKey},
		{"unknown sketch key", "[sketch.grid]\nzoom = 2\n", ErrUnknownKey},
		{"negative frames", "[defaults]\nframes = -1\n", ErrInvalid},
		{"zero scale", "[defaults]\nscale = 0.0\n", ErrInvalid},
		{"negative width", "[sketch.grid]\nwidth = -5\n", ErrInvalid},
		{"smoothing out of range", "[sketch.audio-viz]\nsmoothing = 1.0\n", ErrInvalid},
		{"fft size not a power of two", "[sketch.audio-viz-circles]\nfft_size = 100\n", ErrInvalid},
		{"fft size too small", "[sketch.audio-viz]\nfft_size = 16\n", ErrInvalid},
		{"fft size too large", "[sketch.audio-viz]\nfft_size = 65536\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse([]byte("[defaults\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\noutput = \"frames\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "frames", cfg.Defaults.Output)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err, "an explicit path must exist")
}

func TestLoad_DefaultFileOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("[defaults]\nframes = 3\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Defaults.Frames)
}
