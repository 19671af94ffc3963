// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Command sketchkit lists, renders and plays generative sketches.
//
//	sketchkit list
//	sketchkit render triangle --seed 4 --out out
//	sketchkit play curves
//	sketchkit play audio-viz-circles --audio song.mp3
//	sketchkit spectrum song.mp3 --out spectrum.png
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sketchkit/sketchkit/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		c.Logger.Error(err)
		os.Exit(1)
	}
}
