// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package audio

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Spectrum is the mean decibel spectrum of a whole stream.
type Spectrum struct {
	SampleRate int
	FFTSize    int
	Windows    int
	Decibels   []float64
}

// AnalyseStream reads 16-bit stereo PCM from r until EOF and averages the
// spectrum of every consecutive FFT window.
func AnalyseStream(r io.Reader, a *Analyser, sampleRate int) (Spectrum, error) {
	s := Spectrum{
		SampleRate: sampleRate,
		FFTSize:    a.FFTSize(),
		Decibels:   make([]float64, a.FrequencyBinCount()),
	}

	tap := NewTap(r, a)
	buf := make([]byte, a.FFTSize()*BytesPerFrame)
	var frame []float64
	for {
		n, err := io.ReadFull(tap, buf)
		if n == len(buf) {
			frame = a.FloatFrequencyData(frame)
			for k, v := range frame {
				s.Decibels[k] += v
			}
			s.Windows++
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return Spectrum{}, fmt.Errorf("audio: analyse: %w", err)
		}
	}

	if s.Windows == 0 {
		for k := range s.Decibels {
			s.Decibels[k] = a.MinDecibels()
		}
		return s, nil
	}
	for k := range s.Decibels {
		s.Decibels[k] /= float64(s.Windows)
	}
	return s, nil
}

// Peak returns the bin with the highest level.
func (s Spectrum) Peak() int {
	peak := 0
	for k, v := range s.Decibels {
		if v > s.Decibels[peak] {
			peak = k
		}
	}
	return peak
}

// Plot renders the spectrum as a line chart of level against frequency.
func (s Spectrum) Plot(title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Level (dB)"

	pts := make(plotter.XYs, len(s.Decibels))
	for k, v := range s.Decibels {
		pts[k] = plotter.XY{X: float64(k) * float64(s.SampleRate) / float64(s.FFTSize), Y: v}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("audio: plot: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	return p, nil
}

// SavePlot writes the spectrum chart to path. The format follows the
// extension, for example .png or .svg.
func (s Spectrum) SavePlot(path, title string) error {
	p, err := s.Plot(title)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
