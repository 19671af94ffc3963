// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sketchkit/sketchkit/sketches"
)

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available sketches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range sketches.Available() {
				s, err := sketches.Get(name)
				if err != nil {
					return err
				}
				kind := "static"
				switch {
				case s.Settings.Audio:
					kind = "audio"
				case s.Settings.Animate:
					kind = "animated"
				}
				fmt.Fprintf(tw, "%s\t%dx%d\t%s\t%s\n", name, s.Settings.Width, s.Settings.Height, kind, s.Description)
			}
			return tw.Flush()
		},
	}
}
