// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownSketch is returned by Get for names nothing registered.
var ErrUnknownSketch = errors.New("sketches: unknown sketch")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Sketch)
)

// Register adds s to the registry, replacing any sketch with the same name.
// It panics when s has no name or no Setup.
func Register(s Sketch) {
	if s.Name == "" || s.Setup == nil {
		panic("sketches: Register needs a name and a setup function")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[s.Name] = s
}

// Unregister removes a sketch. It is mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// Available returns the registered sketch names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a sketch with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Get returns the sketch registered under name.
func Get(name string) (Sketch, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[name]
	if !ok {
		return Sketch{}, fmt.Errorf("%w: %q", ErrUnknownSketch, name)
	}
	return s, nil
}
