// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/audio/playback"
	"github.com/sketchkit/sketchkit/canvas"
	"github.com/sketchkit/sketchkit/sketches"
)

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithScale sets the initial window size as a multiple of the sketch size.
func WithScale(s float64) WindowOption {
	return func(w *Window) {
		if s > 0 && !math.IsInf(s, 0) {
			w.scale = s
		}
	}
}

// WithHUD toggles the status line drawn over the sketch.
func WithHUD(on bool) WindowOption {
	return func(w *Window) {
		w.hud = on
	}
}

// Window runs a sketch interactively.
//
// The left mouse button drives the sketch's pointer input. Space pauses
// the animation, Escape quits. For audio sketches a click toggles playback
// of the track and the animation together; the track is loaded on the
// first click.
type Window struct {
	sketch   sketches.Sketch
	settings sketches.Settings
	scale    float64
	hud      bool

	canvas  *canvas.Canvas
	input   *sketchkit.PointerInput
	pointer pointerTracker
	render  sketches.RenderFunc
	img     *ebiten.Image

	frame   int
	running bool
	err     error

	analyser *audio.Analyser
	track    *playback.Track
}

// NewWindow sets up s for interactive play. The window opens on Run.
func NewWindow(s sketches.Sketch, settings sketches.Settings, opts ...WindowOption) (*Window, error) {
	w, h := settings.Width, settings.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("driver: %s: invalid size %dx%d", s.Name, w, h)
	}

	win := &Window{
		sketch:   s,
		settings: settings,
		scale:    1,
		hud:      true,
		canvas:   canvas.New(w, h),
		input:    sketchkit.NewPointerInput(float64(w), float64(h)),
		// Audio sketches wait for a click, the gesture that starts playback.
		running: settings.Animate && !settings.Audio,
	}
	for _, opt := range opts {
		opt(win)
	}

	render, err := s.Setup(sketches.Env{Width: w, Height: h, Input: win.input, Settings: settings})
	if err != nil {
		_ = win.canvas.Close()
		return nil, fmt.Errorf("driver: setup %s: %w", s.Name, err)
	}
	win.render = render

	if settings.Audio {
		win.input.Window().AddPointerListener(sketchkit.PointerUp, func(sketchkit.PointerEvent) {
			if err := win.TogglePlayback(); err != nil && win.err == nil {
				win.err = err
			}
		})
	}
	return win, nil
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowTitle("sketchkit: " + w.sketch.Name)
	ebiten.SetWindowSize(
		int(float64(w.settings.Width)*w.scale),
		int(float64(w.settings.Height)*w.scale),
	)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	fps := w.settings.FPS
	if fps <= 0 {
		fps = sketches.DefaultFPS
	}
	ebiten.SetTPS(fps)

	sketchkit.Logger().Info("driver: window opened", "sketch", w.sketch.Name,
		"width", w.settings.Width, "height", w.settings.Height, "fps", fps)

	err := ebiten.RunGame(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Close stops audio and releases the canvas.
func (w *Window) Close() error {
	var err error
	if w.track != nil {
		err = w.track.Close()
		w.track = nil
	}
	if cerr := w.canvas.Close(); err == nil {
		err = cerr
	}
	return err
}

// Running reports whether the animation advances.
func (w *Window) Running() bool { return w.running }

// TogglePlayback pauses or resumes the animation. Audio sketches load
// their track on the first call and play or pause it with the animation.
func (w *Window) TogglePlayback() error {
	if !w.settings.Audio {
		w.running = !w.running
		return nil
	}
	if w.settings.AudioFile == "" {
		return fmt.Errorf("driver: %s needs an audio file", w.sketch.Name)
	}

	if w.track == nil {
		an, err := newAnalyser(w.settings)
		if err != nil {
			return fmt.Errorf("driver: %w", err)
		}
		ctx := ebitenaudio.CurrentContext()
		if ctx == nil {
			ctx = ebitenaudio.NewContext(audio.SampleRate)
		}
		track, err := playback.OpenTrack(ctx, w.settings.AudioFile, an)
		if err != nil {
			return fmt.Errorf("driver: %w", err)
		}
		w.analyser, w.track = an, track
	}

	w.running = w.track.Toggle()
	sketchkit.Logger().Debug("driver: playback toggled", "playing", w.running)
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.err != nil {
		return w.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := w.TogglePlayback(); err != nil {
			return err
		}
	}

	x, y := ebiten.CursorPosition()
	w.pointer.update(w.input, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
	if w.err != nil {
		return w.err
	}

	// Paused and static sketches keep their last frame.
	if !w.running && w.frame > 0 {
		return nil
	}

	w.canvas.Clear()
	err := w.render(sketches.Frame{
		Canvas:   w.canvas,
		Width:    w.settings.Width,
		Height:   w.settings.Height,
		Index:    w.frame,
		Time:     time.Duration(w.frame) * w.settings.FrameDuration(),
		Analyser: w.analyser,
	})
	if err != nil {
		return fmt.Errorf("driver: %s frame %d: %w", w.sketch.Name, w.frame, err)
	}
	w.frame++
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(w.settings.Width, w.settings.Height)
	}
	// Canvas pixels are premultiplied RGBA, as WritePixels expects.
	w.img.WritePixels(w.canvas.Pixels())

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(sw)/float64(w.settings.Width), float64(sh)/float64(w.settings.Height))
	screen.DrawImage(w.img, op)

	if w.hud {
		ebitenutil.DebugPrint(screen, w.status())
	}
}

func (w *Window) status() string {
	s := fmt.Sprintf("%s  frame %d  %.0f tps", w.sketch.Name, w.frame, ebiten.ActualTPS())
	switch {
	case w.settings.Audio && w.track == nil:
		s += "  click to play"
	case !w.running:
		s += "  paused"
	}
	return s
}

// Layout implements ebiten.Game. The screen matches the window so the
// sketch scales to fill it; pointer coordinates are normalised back to
// sketch space by the input.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.input.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
