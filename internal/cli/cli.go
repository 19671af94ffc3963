// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package cli implements the sketchkit command-line interface.
//
// # Commands
//
//   - list: show the registered sketches
//   - render: record a sketch to PNG frames
//   - play: open a sketch in a window
//   - spectrum: plot the average spectrum of an audio file
//
// # Logging
//
// Every command accepts --verbose (-v) for debug logging. The
// charmbracelet/log logger is also installed as the library's slog
// handler, so canvas, driver and audio messages share its format.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sketchkit/sketchkit"
	"github.com/sketchkit/sketchkit/internal/config"
	"github.com/sketchkit/sketchkit/sketches"
)

const appName = "sketchkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "sketchkit renders generative sketches",
		Long:          `sketchkit renders parametric and audio-reactive generative sketches, headlessly to PNG frames or interactively in a window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "configuration file (default "+config.DefaultFile+" if present)")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.spectrumCommand())
	return root
}

// setup applies --verbose, loads the configuration and routes library
// logs through the CLI logger.
func (c *CLI) setup() error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	sketchkit.SetLogger(slog.New(c.Logger))

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("configuration loaded", "path", c.configPath, "sketches", len(cfg.Sketch))
	return nil
}

// sketchFlags are the settings any sketch command can override.
type sketchFlags struct {
	width, height, fps int
	seed               uint64
	audio              string
}

func (f *sketchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "canvas height in pixels")
	cmd.Flags().IntVar(&f.fps, "fps", 0, "frames per second")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&f.audio, "audio", "", "audio file for audio sketches (mp3 or wav)")
}

// resolve looks up the sketch and layers its defaults, the configuration
// file and the flags the user set.
func (c *CLI) resolve(cmd *cobra.Command, name string, f *sketchFlags) (sketches.Sketch, sketches.Settings, error) {
	s, err := sketches.Get(name)
	if err != nil {
		return sketches.Sketch{}, sketches.Settings{}, err
	}
	settings := c.Config.Settings(name, s.Settings)

	flags := cmd.Flags()
	if flags.Changed("width") {
		settings.Width = f.width
	}
	if flags.Changed("height") {
		settings.Height = f.height
	}
	if flags.Changed("fps") {
		settings.FPS = f.fps
	}
	if flags.Changed("seed") {
		settings.Seed = f.seed
	}
	if flags.Changed("audio") {
		settings.AudioFile = f.audio
	}

	if settings.Width <= 0 || settings.Height <= 0 {
		return s, settings, fmt.Errorf("%s: invalid size %dx%d", name, settings.Width, settings.Height)
	}
	return s, settings, nil
}

// completeSketches offers registered sketch names for the first argument.
func completeSketches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return sketches.Available(), cobra.ShellCompDirectiveNoFileComp
}
