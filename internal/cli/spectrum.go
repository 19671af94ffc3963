// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sketchkit/sketchkit/audio"
	"github.com/sketchkit/sketchkit/audio/playback"
)

func (c *CLI) spectrumCommand() *cobra.Command {
	var (
		out     string
		fftSize int
		title   string
	)

	cmd := &cobra.Command{
		Use:   "spectrum <audio-file>",
		Short: "Plot the average spectrum of an audio file",
		Long:  `Decode an mp3 or wav file, average its spectrum over every analysis window and write the result as a chart. The chart format follows the output extension.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			stream, err := playback.Decode(path, f, audio.SampleRate)
			if err != nil {
				return err
			}
			an, err := audio.NewAnalyser(fftSize, audio.WithSmoothing(0))
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			spec, err := audio.AnalyseStream(stream, an, audio.SampleRate)
			if err != nil {
				return err
			}
			if title == "" {
				title = filepath.Base(path)
			}
			if err := spec.SavePlot(out, title); err != nil {
				return fmt.Errorf("spectrum: %w", err)
			}

			peak := spec.Peak()
			c.Logger.Info("spectrum analysed",
				"windows", spec.Windows,
				"peak_hz", an.BinFrequency(peak, audio.SampleRate),
				"peak_db", spec.Decibels[peak])
			prog.done("Wrote " + out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "spectrum.png", "output chart (.png, .svg or .pdf)")
	cmd.Flags().IntVar(&fftSize, "fft-size", audio.DefaultFFTSize, "analysis window in samples, a power of two")
	cmd.Flags().StringVar(&title, "title", "", "chart title (default: the file name)")
	return cmd
}
