// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/canvas"
	"github.com/sketchkit/sketchkit/internal/parallel"
	"github.com/sketchkit/sketchkit/sketches"
)

// DefaultFrames is how many frames an animated sketch records by default.
const DefaultFrames = 60

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithFrames sets the number of frames recorded for animated sketches.
// Static sketches always record one.
func WithFrames(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.frames = n
		}
	}
}

// WithOutput sets the directory frames are written to. It is created if
// needed.
func WithOutput(dir string) RecorderOption {
	return func(r *Recorder) {
		r.out = dir
	}
}

// WithEncoders sets how many frames are PNG-encoded concurrently while the
// next ones render. The default is GOMAXPROCS.
func WithEncoders(n int) RecorderOption {
	return func(r *Recorder) {
		r.encoders = n
	}
}

// Recorder renders a sketch to PNG files without a window.
//
// Frames render in order on the calling goroutine; each finished frame is
// snapshotted and encoded on a worker pool.
type Recorder struct {
	sketch   sketches.Sketch
	settings sketches.Settings
	frames   int
	out      string
	encoders int
}

// NewRecorder creates a recorder for s using settings in place of the
// sketch defaults.
func NewRecorder(s sketches.Sketch, settings sketches.Settings, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		sketch:   s,
		settings: settings,
		frames:   DefaultFrames,
		out:      ".",
	}
	for _, opt := range opts {
		opt(r)
	}
	if !settings.Animate {
		r.frames = 1
	}
	return r
}

// Frames returns the number of frames Run writes.
func (r *Recorder) Frames() int { return r.frames }

// FramePath returns the file frame i is written to.
func (r *Recorder) FramePath(i int) string {
	if r.frames == 1 {
		return filepath.Join(r.out, r.sketch.Name+".png")
	}
	return filepath.Join(r.out, fmt.Sprintf("%s-%04d.png", r.sketch.Name, i))
}

// Run renders every frame and returns the written paths. It stops between
// frames when ctx is cancelled. Frames rendered before an error are still
// written and included in the returned paths.
func (r *Recorder) Run(ctx context.Context) (paths []string, err error) {
	w, h := r.settings.Width, r.settings.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("driver: %s: invalid size %dx%d", r.sketch.Name, w, h)
	}
	if err := os.MkdirAll(r.out, 0o755); err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	render, err := r.sketch.Setup(sketches.Env{
		Width:    w,
		Height:   h,
		Input:    sketchkit.NewPointerInput(float64(w), float64(h)),
		Settings: r.settings,
	})
	if err != nil {
		return nil, fmt.Errorf("driver: setup %s: %w", r.sketch.Name, err)
	}

	var src *feed
	if r.settings.Audio && r.settings.AudioFile != "" {
		if src, err = openFeed(r.settings); err != nil {
			return nil, err
		}
	}

	c := canvas.New(w, h)
	defer c.Close()

	log := sketchkit.Logger()
	log.Info("driver: recording", "sketch", r.sketch.Name, "frames", r.frames, "out", r.out)

	pool := parallel.NewPool(r.encoders)
	defer func() {
		// Flush frames queued before an early return.
		if werr := pool.Wait(); werr != nil && err == nil {
			err = fmt.Errorf("driver: %w", werr)
		}
	}()

	start := time.Now()
	step := r.settings.FrameDuration()
	paths = make([]string, 0, r.frames)
	for i := 0; i < r.frames; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		var an *audio.Analyser
		if src != nil {
			if err := src.advance(); err != nil {
				return paths, err
			}
			an = src.an
		}

		c.Clear()
		err := render(sketches.Frame{
			Canvas:   c,
			Width:    w,
			Height:   h,
			Index:    i,
			Time:     time.Duration(i) * step,
			Analyser: an,
		})
		if err != nil {
			return paths, fmt.Errorf("driver: %s frame %d: %w", r.sketch.Name, i, err)
		}

		path, img := r.FramePath(i), c.Image()
		if err := pool.Submit(ctx, func() error { return writePNG(path, img) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		log.Debug("driver: frame queued", "index", i, "path", path)
	}
	if err := pool.Wait(); err != nil {
		return paths, fmt.Errorf("driver: %w", err)
	}

	log.Info("driver: recorded", "sketch", r.sketch.Name, "frames", len(paths),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return paths, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
