// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sketchkit/sketchkit/driver"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags  sketchFlags
		frames int
		out    string
	)

	cmd := &cobra.Command{
		Use:               "render <sketch>",
		Short:             "Render a sketch to PNG frames",
		Long:              `Render a sketch headlessly. Static sketches produce one image; animated sketches produce numbered frames. Audio sketches follow their track frame by frame.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSketches,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, settings, err := c.resolve(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("frames") {
				frames = c.Config.Defaults.Frames
			}
			if !cmd.Flags().Changed("out") {
				out = c.Config.Defaults.Output
			}

			prog := newProgress(c.Logger)
			paths, err := driver.NewRecorder(s, settings,
				driver.WithFrames(frames),
				driver.WithOutput(out),
			).Run(cmd.Context())
			if err != nil {
				return err
			}
			prog.done("Rendered " + s.Name + " to " + out)
			c.Logger.Debug("frames written", "count", len(paths))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&frames, "frames", "n", driver.DefaultFrames, "frames to render for animated sketches")
	cmd.Flags().StringVarP(&out, "out", "o", "out", "output directory")
	return cmd
}
