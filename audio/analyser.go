// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/sketchkit/sketchkit"
)

// Analyser defaults, matching the Web Audio AnalyserNode.
const (
	DefaultFFTSize     = 2048
	DefaultMinDecibels = -100.0
	DefaultMaxDecibels = -30.0
	DefaultSmoothing   = 0.8

	minFFTSize = 32
	maxFFTSize = 32768
)

// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two
// between 32 and 32768.
var ErrInvalidFFTSize = errors.New("audio: fft size must be a power of two in [32, 32768]")

// ValidFFTSize reports whether n is a power of two in [32, 32768].
func ValidFFTSize(n int) bool {
	return n >= minFFTSize && n <= maxFFTSize && n&(n-1) == 0
}

// AnalyserOption configures an Analyser.
type AnalyserOption func(*Analyser)

// WithSmoothing sets the time constant used to average successive spectra.
// Values are clamped to [0, 1); 0 disables smoothing.
func WithSmoothing(tau float64) AnalyserOption {
	return func(a *Analyser) {
		a.smoothing = math.Max(0, math.Min(tau, 0.999))
	}
}

// WithDecibelRange sets the range used to scale ByteFrequencyData and the
// floor reported for silent bins.
func WithDecibelRange(minDB, maxDB float64) AnalyserOption {
	return func(a *Analyser) {
		if minDB < maxDB {
			a.minDB, a.maxDB = minDB, maxDB
		}
	}
}

// Analyser computes the frequency spectrum of the most recent fftSize mono
// samples written to it.
//
// Write and the spectrum methods may be called from different goroutines:
// audio players feed samples from their own goroutine while the sketch
// reads the spectrum once per frame.
type Analyser struct {
	mu sync.Mutex

	size      int
	ring      []float64
	pos       int
	smoothing float64
	minDB     float64
	maxDB     float64

	window   []float64
	fft      *fourier.FFT
	seq      []float64
	coeff    []complex128
	smoothed []float64
}

// NewAnalyser creates an analyser over windows of fftSize samples.
func NewAnalyser(fftSize int, opts ...AnalyserOption) (*Analyser, error) {
	if !ValidFFTSize(fftSize) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFFTSize, fftSize)
	}

	a := &Analyser{
		size:      fftSize,
		ring:      make([]float64, fftSize),
		smoothing: DefaultSmoothing,
		minDB:     DefaultMinDecibels,
		maxDB:     DefaultMaxDecibels,
		window:    blackman(fftSize),
		fft:       fourier.NewFFT(fftSize),
		seq:       make([]float64, fftSize),
		coeff:     make([]complex128, fftSize/2+1),
		smoothed:  make([]float64, fftSize/2),
	}
	for _, opt := range opts {
		opt(a)
	}

	sketchkit.Logger().Debug("audio: analyser created",
		"fft_size", fftSize, "smoothing", a.smoothing, "min_db", a.minDB, "max_db", a.maxDB)
	return a, nil
}

// blackman returns the Blackman window with alpha 0.16.
func blackman(n int) []float64 {
	const (
		a0 = 0.42
		a1 = 0.5
		a2 = 0.08
	)
	w := make([]float64, n)
	for i := range w {
		x := 2 * math.Pi * float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(x) + a2*math.Cos(2*x)
	}
	return w
}

// FFTSize returns the window size in samples.
func (a *Analyser) FFTSize() int { return a.size }

// FrequencyBinCount returns the number of spectrum bins, half the FFT size.
func (a *Analyser) FrequencyBinCount() int { return a.size / 2 }

// MinDecibels returns the bottom of the decibel range.
func (a *Analyser) MinDecibels() float64 { return a.minDB }

// MaxDecibels returns the top of the decibel range.
func (a *Analyser) MaxDecibels() float64 { return a.maxDB }

// Smoothing returns the smoothing time constant.
func (a *Analyser) Smoothing() float64 { return a.smoothing }

// Write appends mono samples in [-1, 1]. Only the last FFTSize samples are
// kept.
func (a *Analyser) Write(samples []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(samples) >= a.size {
		copy(a.ring, samples[len(samples)-a.size:])
		a.pos = 0
		return
	}
	for _, s := range samples {
		a.ring[a.pos] = s
		a.pos++
		if a.pos == a.size {
			a.pos = 0
		}
	}
}

// Reset clears the sample history and the smoothed spectrum.
func (a *Analyser) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.ring)
	clear(a.smoothed)
	a.pos = 0
}

// analyse updates the smoothed magnitudes from the current window.
// The caller holds a.mu.
func (a *Analyser) analyse() {
	for i := range a.seq {
		a.seq[i] = a.ring[(a.pos+i)%a.size] * a.window[i]
	}
	a.coeff = a.fft.Coefficients(a.coeff, a.seq)

	scale := 1 / float64(a.size)
	for k := range a.smoothed {
		c := a.coeff[k]
		mag := math.Hypot(real(c), imag(c)) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
	}
}

// FloatFrequencyData analyses the current window and writes one decibel
// value per bin into dst, reallocating it when it is too short. Silent bins
// report MinDecibels.
//
// Each call advances the smoothing, so call it once per frame.
func (a *Analyser) FloatFrequencyData(dst []float64) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.analyse()
	if cap(dst) < len(a.smoothed) {
		dst = make([]float64, len(a.smoothed))
	}
	dst = dst[:len(a.smoothed)]
	for k, m := range a.smoothed {
		dst[k] = a.decibels(m)
	}
	return dst
}

// ByteFrequencyData is FloatFrequencyData scaled linearly from the decibel
// range onto 0..255.
func (a *Analyser) ByteFrequencyData(dst []byte) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.analyse()
	if cap(dst) < len(a.smoothed) {
		dst = make([]byte, len(a.smoothed))
	}
	dst = dst[:len(a.smoothed)]
	for k, m := range a.smoothed {
		v := sketchkit.MapRange(a.decibels(m), a.minDB, a.maxDB, 0, 255, true)
		dst[k] = byte(v)
	}
	return dst
}

// decibels converts a magnitude to dB, floored at minDB.
func (a *Analyser) decibels(mag float64) float64 {
	if mag <= 0 {
		return a.minDB
	}
	return math.Max(a.minDB, 20*math.Log10(mag))
}

// AverageDecibels returns the mean of a decibel spectrum, or MinDecibels
// for an empty one.
func (a *Analyser) AverageDecibels(data []float64) float64 {
	if len(data) == 0 {
		return a.minDB
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// BinFrequency returns the centre frequency in Hz of bin k.
func (a *Analyser) BinFrequency(k int, sampleRate int) float64 {
	return float64(k) * float64(sampleRate) / float64(a.size)
}
