// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sketchkit/sketchkit/driver"
)

func (c *CLI) playCommand() *cobra.Command {
	var (
		flags sketchFlags
		scale float64
		noHUD bool
	)

	cmd := &cobra.Command{
		Use:               "play <sketch>",
		Short:             "Open a sketch in a window",
		Long:              `Open a sketch in an interactive window. Drag points with the mouse, press space to pause and escape to quit. Audio sketches start when clicked.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSketches,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, settings, err := c.resolve(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("scale") {
				scale = c.Config.Defaults.Scale
			}

			w, err := driver.NewWindow(s, settings, driver.WithScale(scale), driver.WithHUD(!noHUD))
			if err != nil {
				return err
			}
			return w.Run()
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&scale, "scale", 1, "window size relative to the sketch size")
	cmd.Flags().BoolVar(&noHUD, "no-hud", false, "hide the status line")
	return cmd
}
