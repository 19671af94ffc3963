// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package config loads sketchkit.toml.
//
// The file is optional. Values in [defaults] apply to every command;
// [sketch.<name>] tables override the built-in settings of one sketch:
//
//	[defaults]
//	output = "out"
//	frames = 60
//	scale = 1.0
//
//	[sketch.animation]
//	width = 1080
//	height = 1080
//	fps = 60
//	seed = 7
//	audio = "audio/demo1.mp3"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/sketches"
)

// DefaultFile is read when no path is given and it exists in the working
// directory.
const DefaultFile = "sketchkit.toml"

var (
	// ErrUnknownKey is returned for keys the configuration does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned for values out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the decoded configuration file.
type Config struct {
	Defaults Defaults                  `toml:"defaults"`
	Sketch   map[string]SketchOverride `toml:"sketch"`
}

// Defaults apply to every sketch.
type Defaults struct {
	// Output is the directory rendered frames are written to.
	Output string `toml:"output"`
	// Frames is how many frames render writes for animated sketches.
	Frames int `toml:"frames"`
	// Scale multiplies the window size of play.
	Scale float64 `toml:"scale"`
}

// SketchOverride replaces the non-zero fields of a sketch's settings.
type SketchOverride struct {
	Width     int      `toml:"width"`
	Height    int      `toml:"height"`
	FPS       int      `toml:"fps"`
	Seed      *uint64  `toml:"seed"`
	Audio     string   `toml:"audio"`
	FFTSize   int      `toml:"fft_size"`
	Smoothing *float64 `toml:"smoothing"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Output: "out",
			Frames: 60,
			Scale:  1,
		},
	}
}

// Load reads the configuration at path. An empty path reads DefaultFile if
// it exists and returns Default otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Defaults.Frames < 0 {
		return fmt.Errorf("%w: defaults.frames must not be negative, got %d", ErrInvalid, c.Defaults.Frames)
	}
	if c.Defaults.Scale <= 0 {
		return fmt.Errorf("%w: defaults.scale must be positive, got %g", ErrInvalid, c.Defaults.Scale)
	}

	names := make([]string, 0, len(c.Sketch))
	for name := range c.Sketch {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		o := c.Sketch[name]
		if o.Width < 0 || o.Height < 0 || o.FPS < 0 || o.FFTSize < 0 {
			return fmt.Errorf("%w: sketch.%s: sizes and rates must not be negative", ErrInvalid, name)
		}
		if o.FFTSize > 0 && !audio.ValidFFTSize(o.FFTSize) {
			return fmt.Errorf("%w: sketch.%s.fft_size must be a power of two in [32, 32768], got %d", ErrInvalid, name, o.FFTSize)
		}
		if o.Smoothing != nil && (*o.Smoothing < 0 || *o.Smoothing >= 1) {
			return fmt.Errorf("%w: sketch.%s.smoothing must be in [0, 1), got %g", ErrInvalid, name, *o.Smoothing)
		}
	}
	return nil
}

// Settings returns base with the overrides for the named sketch applied.
func (c Config) Settings(name string, base sketches.Settings) sketches.Settings {
	o, ok := c.Sketch[name]
	if !ok {
		return base
	}
	return o.Apply(base)
}

// Apply returns s with every set field of o copied over.
func (o SketchOverride) Apply(s sketches.Settings) sketches.Settings {
	if o.Width > 0 {
		s.Width = o.Width
	}
	if o.Height > 0 {
		s.Height = o.Height
	}
	if o.FPS > 0 {
		s.FPS = o.FPS
	}
	if o.Seed != nil {
		s.Seed = *o.Seed
	}
	if o.Audio != "" {
		s.AudioFile = o.Audio
	}
	if o.FFTSize > 0 {
		s.FFTSize = o.FFTSize
	}
	if o.Smoothing != nil {
		s.Smoothing = *o.Smoothing
	}
	return s
}
