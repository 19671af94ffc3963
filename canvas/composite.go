// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/sketchkit/sketchkit/internal/blend"
)

// ErrUnknownComposite is returned for composite operations Canvas does not
// support.
var ErrUnknownComposite = blend.ErrUnknownMode

// CompositeOperations lists the accepted composite operation keywords.
func CompositeOperations() []string {
	modes := blend.Modes()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = m.String()
	}
	return out
}

// SetCompositeOperation sets how subsequent fills and strokes combine with
// the pixels below, using canvas keywords such as "multiply", "overlay" or
// "color-burn". The operation is part of the saved state.
func (c *Canvas) SetCompositeOperation(op string) error {
	m, err := blend.ParseMode(op)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	c.state.composite = m
	return nil
}

// CompositeOperation returns the current composite operation keyword.
func (c *Canvas) CompositeOperation() string {
	return c.state.composite.String()
}

// WithComposite runs fn with the composite operation set to op and restores
// the full state afterwards.
func (c *Canvas) WithComposite(op string, fn func() error) error {
	c.Save()
	defer c.Restore()
	if err := c.SetCompositeOperation(op); err != nil {
		return err
	}
	return fn()
}

// composited runs fn against a fresh transparent gg layer and blends the
// layer onto the backdrop with mode.
func (c *Canvas) composited(mode blend.Mode, fn func(target *gg.Pixmap) error) error {
	backdrop := c.dc.ResizeTarget()

	c.dc.PushLayer(gg.BlendNormal, 1)
	layer := c.dc.ResizeTarget()

	err := fn(layer)
	if berr := blend.Composite(backdrop.Data(), layer.Data(), mode, 1); err == nil {
		err = berr
	}

	// The layer has been blended already; pop it empty.
	layer.Clear(gg.Transparent)
	c.dc.PopLayer()
	return err
}
