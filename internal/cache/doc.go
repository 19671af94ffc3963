// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
//	faces := cache.New[float64, text.Face](32)
//	f := faces.GetOrCreate(24, func() text.Face { return src.Face(24) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
