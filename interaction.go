// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

import "math"

// PointerKind identifies a pointer event.
type PointerKind int

// Pointer event kinds.
const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// String returns the event name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in device pixels, relative to the
// canvas's top-left corner.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerHandler receives pointer events.
type PointerHandler func(PointerEvent)

// EventTarget dispatches pointer events to listeners.
type EventTarget interface {
	// AddPointerListener registers fn for events of the given kind and
	// returns a function that removes it. Removing twice is a no-op.
	AddPointerListener(kind PointerKind, fn PointerHandler) (remove func())
}

// Viewport reports the logical size of a surface and the size it occupies
// on the device. The two differ on scaled or high-DPI displays.
type Viewport interface {
	LogicalSize() (w, h float64)
	DeviceSize() (w, h float64)
}

// Normalize converts device coordinates to logical surface coordinates by
// scaling each axis by logical/device size. A zero device size leaves the
// coordinate unchanged.
func Normalize(v Viewport, x, y float64) (float64, float64) {
	lw, lh := v.LogicalSize()
	dw, dh := v.DeviceSize()
	if dw > 0 {
		x = x / dw * lw
	}
	if dh > 0 {
		y = y / dh * lh
	}
	return x, y
}

// Input is a pointer-enabled surface: canvas-level events, window-level
// events and the viewport used to normalize them.
type Input interface {
	Viewport
	Canvas() EventTarget
	Window() EventTarget
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithMissHandler sets the function called with normalized coordinates when
// a pointer-down hits no point. A typical handler appends a new point.
func WithMissHandler(fn func(x, y float64)) ControllerOption {
	return func(c *Controller) {
		c.onMiss = fn
	}
}

// WithExclusiveHit limits a pointer-down to the single nearest hit point.
// By default every hit point starts dragging.
func WithExclusiveHit() ControllerOption {
	return func(c *Controller) {
		c.exclusive = true
	}
}

// Controller binds pointer events to a point collection and manages drag
// sessions. At most one session is open at a time.
type Controller struct {
	input     Input
	points    PointSource
	onMiss    func(x, y float64)
	exclusive bool

	removeDown func()
	session    *DragSession
}

// Attach registers a pointer-down listener on the input's canvas and returns
// the controller driving points.
func Attach(in Input, points PointSource, opts ...ControllerOption) *Controller {
	c := &Controller{input: in, points: points}
	for _, opt := range opts {
		opt(c)
	}
	c.removeDown = in.Canvas().AddPointerListener(PointerDown, c.handleDown)
	return c
}

// Detach removes the controller's listeners and ends any open session.
func (c *Controller) Detach() {
	if c.session != nil {
		c.session.End()
	}
	if c.removeDown != nil {
		c.removeDown()
		c.removeDown = nil
	}
}

// Session returns the open drag session, or nil.
func (c *Controller) Session() *DragSession {
	return c.session
}

func (c *Controller) handleDown(ev PointerEvent) {
	x, y := Normalize(c.input, ev.X, ev.Y)

	// A down without an up (pointer released outside the window) would
	// otherwise leak the previous session's listeners.
	if c.session != nil {
		c.session.End()
	}

	hits := c.hitTest(x, y)
	if len(hits) == 0 {
		if c.onMiss != nil {
			c.onMiss(x, y)
		}
		return
	}

	for _, p := range hits {
		p.StartDrag()
	}
	c.session = c.openSession(hits)
}

func (c *Controller) hitTest(x, y float64) []*Point {
	var hits []*Point
	best := math.Inf(1)
	for _, p := range c.points.Points() {
		if !p.HitTest(x, y) {
			continue
		}
		if !c.exclusive {
			hits = append(hits, p)
			continue
		}
		if d := Distance(p.X, p.Y, x, y); d < best {
			best = d
			hits = []*Point{p}
		}
	}
	return hits
}

// DragSession is one drag: from the pointer-down that hit points to the next
// window pointer-up. It owns the window move and up listeners.
type DragSession struct {
	ctrl    *Controller
	dragged []*Point
	remove  []func()
	ended   bool
}

func (c *Controller) openSession(hits []*Point) *DragSession {
	s := &DragSession{ctrl: c, dragged: hits}
	win := c.input.Window()
	s.remove = []func(){
		win.AddPointerListener(PointerMove, s.handleMove),
		win.AddPointerListener(PointerUp, s.handleUp),
	}
	Logger().Debug("sketchkit: drag session started", "points", len(hits))
	return s
}

// Points returns the points grabbed at the start of the session.
func (s *DragSession) Points() []*Point { return s.dragged }

// Active reports whether the session is still open.
func (s *DragSession) Active() bool { return !s.ended }

func (s *DragSession) handleMove(ev PointerEvent) {
	if s.ended {
		return
	}
	x, y := Normalize(s.ctrl.input, ev.X, ev.Y)
	for _, p := range s.ctrl.points.Points() {
		if !p.IsDragging() {
			continue
		}
		p.X = x
		p.Y = y
	}
}

func (s *DragSession) handleUp(PointerEvent) {
	s.End()
}

// End stops dragging every point and removes the session's listeners.
// It is idempotent.
func (s *DragSession) End() {
	if s.ended {
		return
	}
	s.ended = true
	for _, p := range s.ctrl.points.Points() {
		p.StopDrag()
	}
	for _, rm := range s.remove {
		rm()
	}
	s.remove = nil
	if s.ctrl.session == s {
		s.ctrl.session = nil
	}
	Logger().Debug("sketchkit: drag session ended")
}
