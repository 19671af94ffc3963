// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		lw, lh, dw, dh float64
		x, y           float64
		wantX, wantY   float64
	}{
		{"identity", 1000, 1000, 1000, 1000, 200, 540, 200, 540},
		{"css scaled down", 1000, 1000, 500, 500, 100, 270, 200, 540},
		{"high dpi", 800, 600, 1600, 1200, 400, 300, 200, 150},
		{"non uniform", 1000, 500, 500, 500, 100, 100, 200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewPointerInput(tt.lw, tt.lh)
			in.Resize(tt.dw, tt.dh)
			x, y := Normalize(in, tt.x, tt.y)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestController_DragLifecycle(t *testing.T) {
	in := NewPointerInput(1000, 1000)
	target := NewPoint(200, 540)
	other := NewPoint(800, 540)
	points := NewPointList(target, other)

	ctrl := Attach(in, points)
	defer ctrl.Detach()

	in.Down(205, 545)
	require.True(t, target.IsDragging())
	assert.False(t, other.IsDragging())
	require.NotNil(t, ctrl.Session())
	assert.Equal(t, 1, in.Listeners(PointerMove))
	assert.Equal(t, 1, in.Listeners(PointerUp))

	in.Move(210, 545)
	assert.Equal(t, 210.0, target.X)
	assert.Equal(t, 545.0, target.Y)

	in.Move(300, 600)
	in.Up(300, 600)

	assert.False(t, target.IsDragging())
	assert.False(t, other.IsDragging())
	assert.Equal(t, 300.0, target.X, "final position is last move")
	assert.Equal(t, 600.0, target.Y)
	assert.Equal(t, 800.0, other.X, "unhit point unchanged")
	assert.Equal(t, 540.0, other.Y)

	assert.Nil(t, ctrl.Session())
	assert.Equal(t, 0, in.Listeners(PointerMove), "session listeners removed")
	assert.Equal(t, 0, in.Listeners(PointerUp))

	// Moves after the session ended do nothing.
	in.Move(0, 0)
	assert.Equal(t, 300.0, target.X)
}

func TestController_NormalizesScaledCanvas(t *testing.T) {
	in := NewPointerInput(1000, 1000)
	in.Resize(500, 500)
	p := NewPoint(200, 540)
	ctrl := Attach(in, NewPointList(p))
	defer ctrl.Detach()

	in.Down(101, 271)
	require.True(t, p.IsDragging())

	in.Move(105, 272.5)
	assert.InDelta(t, 210, p.X, 1e-9)
	assert.InDelta(t, 545, p.Y, 1e-9)
	in.Up(0, 0)
}

func TestController_MissHandlerAppends(t *testing.T) {
	in := NewPointerInput(1000, 1000)
	points := NewPointList(NewPoint(200, 540))

	var misses int
	ctrl := Attach(in, points, WithMissHandler(func(x, y float64) {
		misses++
		points.Append(NewPoint(x, y))
	}))
	defer ctrl.Detach()

	in.Down(600, 100)
	assert.Equal(t, 1, misses)
	require.Equal(t, 2, points.Len())
	assert.Nil(t, ctrl.Session(), "a miss opens no session")
	assert.Equal(t, 0, in.Listeners(PointerMove))

	// The appended point is immediately draggable.
	in.Down(601, 101)
	assert.Equal(t, 1, misses)
	assert.True(t, points.At(1).IsDragging())
	in.Up(0, 0)
}

func TestController_MultipleHits(t *testing.T) {
	in := NewPointerInput(100, 100)
	a := NewPoint(50, 50)
	b := NewPoint(55, 50)
	ctrl := Attach(in, NewPointList(a, b))
	defer ctrl.Detach()

	in.Down(52, 50)
	assert.True(t, a.IsDragging())
	assert.True(t, b.IsDragging())
	assert.Len(t, ctrl.Session().Points(), 2)

	in.Move(10, 10)
	assert.Equal(t, a.X, b.X, "overlapping points move together")
	in.Up(10, 10)
}

func TestController_ExclusiveHit(t *testing.T) {
	in := NewPointerInput(100, 100)
	a := NewPoint(50, 50)
	b := NewPoint(55, 50)
	ctrl := Attach(in, NewPointList(a, b), WithExclusiveHit())
	defer ctrl.Detach()

	in.Down(54, 50)
	assert.False(t, a.IsDragging())
	assert.True(t, b.IsDragging(), "nearest point wins")

	in.Move(10, 10)
	assert.Equal(t, 50.0, a.X)
	assert.Equal(t, 10.0, b.X)
	in.Up(10, 10)
}

func TestController_Detach(t *testing.T) {
	in := NewPointerInput(100, 100)
	p := NewPoint(50, 50)
	ctrl := Attach(in, NewPointList(p))

	in.Down(50, 50)
	require.True(t, p.IsDragging())

	ctrl.Detach()
	assert.False(t, p.IsDragging())
	assert.Equal(t, 0, in.Listeners(PointerDown))
	assert.Equal(t, 0, in.Listeners(PointerMove))
	assert.Equal(t, 0, in.Listeners(PointerUp))

	in.Down(50, 50)
	assert.False(t, p.IsDragging(), "detached controller ignores events")
}

func TestController_RepeatedAttachDoesNotLeak(t *testing.T) {
	in := NewPointerInput(100, 100)
	points := NewPointList(NewPoint(50, 50))

	for i := 0; i < 5; i++ {
		ctrl := Attach(in, points)
		in.Down(50, 50)
		in.Up(50, 50)
		ctrl.Detach()
	}
	assert.Equal(t, 0, in.Listeners(PointerDown))
	assert.Equal(t, 0, in.Listeners(PointerMove))
	assert.Equal(t, 0, in.Listeners(PointerUp))
}

func TestController_DownWithoutUpEndsPreviousSession(t *testing.T) {
	in := NewPointerInput(100, 100)
	p := NewPoint(50, 50)
	ctrl := Attach(in, NewPointList(p))
	defer ctrl.Detach()

	in.Down(50, 50)
	first := ctrl.Session()
	in.Down(50, 50)

	assert.False(t, first.Active())
	assert.True(t, ctrl.Session().Active())
	assert.Equal(t, 1, in.Listeners(PointerMove))
}

func TestController_GridPoints(t *testing.T) {
	g := NewGrid(GridConfig{Columns: 2, Rows: 1, Width: 100, Height: 50}).Build()
	in := NewPointerInput(100, 50)
	ctrl := Attach(in, g)
	defer ctrl.Detach()

	in.Down(49, 1)
	in.Move(60, 10)
	in.Up(60, 10)

	assert.Equal(t, 0.0, g.Points()[0].X)
	assert.Equal(t, 60.0, g.Points()[1].X)
	assert.Equal(t, 10.0, g.Points()[1].Y)
}

func TestDispatcher_RemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	var removeB func()

	d.AddPointerListener(PointerUp, func(PointerEvent) {
		calls = append(calls, "a")
		removeB()
	})
	removeB = d.AddPointerListener(PointerUp, func(PointerEvent) {
		calls = append(calls, "b")
	})

	d.Dispatch(PointerEvent{Kind: PointerUp})
	d.Dispatch(PointerEvent{Kind: PointerUp})

	assert.Equal(t, []string{"a", "b", "a"}, calls)
	assert.Equal(t, 1, d.Len(PointerUp))

	removeB()
	assert.Equal(t, 1, d.Len(PointerUp), "second remove is a no-op")
}

func TestPointerKind_String(t *testing.T) {
	assert.Equal(t, "down", PointerDown.String())
	assert.Equal(t, "move", PointerMove.String())
	assert.Equal(t, "up", PointerUp.String())
	assert.Equal(t, "unknown", PointerKind(9).String())
}
