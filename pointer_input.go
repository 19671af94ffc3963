// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketchkit

// Dispatcher is an EventTarget that delivers events synchronously in
// registration order. Listeners may add or remove listeners while an event
// is being dispatched; changes take effect from the next event.
type Dispatcher struct {
	nextID    int
	listeners map[PointerKind][]listener
}

type listener struct {
	id int
	fn PointerHandler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[PointerKind][]listener)}
}

// AddPointerListener implements EventTarget.
func (d *Dispatcher) AddPointerListener(kind PointerKind, fn PointerHandler) func() {
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listener{id: id, fn: fn})

	return func() {
		ls := d.listeners[kind]
		for i, l := range ls {
			if l.id == id {
				// Copy so an in-flight Dispatch keeps its snapshot intact.
				next := make([]listener, 0, len(ls)-1)
				next = append(next, ls[:i]...)
				d.listeners[kind] = append(next, ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to the listeners registered for ev.Kind.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	for _, l := range d.listeners[ev.Kind] {
		l.fn(ev)
	}
}

// Len returns the number of listeners registered for kind.
func (d *Dispatcher) Len(kind PointerKind) int {
	return len(d.listeners[kind])
}

// PointerInput is the Input implementation used by drivers. Pointer-down
// events go to the canvas target; move and up events go to the window
// target, mirroring a browser canvas inside a window.
type PointerInput struct {
	canvas *Dispatcher
	window *Dispatcher

	logicalW, logicalH float64
	deviceW, deviceH   float64
}

// NewPointerInput creates an input for a surface of the given logical size.
// The device size starts equal to the logical size.
func NewPointerInput(logicalW, logicalH float64) *PointerInput {
	return &PointerInput{
		canvas:   NewDispatcher(),
		window:   NewDispatcher(),
		logicalW: logicalW,
		logicalH: logicalH,
		deviceW:  logicalW,
		deviceH:  logicalH,
	}
}

// Canvas implements Input.
func (in *PointerInput) Canvas() EventTarget { return in.canvas }

// Window implements Input.
func (in *PointerInput) Window() EventTarget { return in.window }

// LogicalSize implements Viewport.
func (in *PointerInput) LogicalSize() (w, h float64) { return in.logicalW, in.logicalH }

// DeviceSize implements Viewport.
func (in *PointerInput) DeviceSize() (w, h float64) { return in.deviceW, in.deviceH }

// Resize records the size the surface occupies on the device.
func (in *PointerInput) Resize(deviceW, deviceH float64) {
	in.deviceW, in.deviceH = deviceW, deviceH
}

// Down dispatches a pointer-down at device coordinates (x, y).
func (in *PointerInput) Down(x, y float64) {
	in.canvas.Dispatch(PointerEvent{Kind: PointerDown, X: x, Y: y})
}

// Move dispatches a pointer-move at device coordinates (x, y).
func (in *PointerInput) Move(x, y float64) {
	in.window.Dispatch(PointerEvent{Kind: PointerMove, X: x, Y: y})
}

// Up dispatches a pointer-up at device coordinates (x, y).
func (in *PointerInput) Up(x, y float64) {
	in.window.Dispatch(PointerEvent{Kind: PointerUp, X: x, Y: y})
}

// Listeners returns the number of listeners for kind on the canvas and
// window targets combined.
func (in *PointerInput) Listeners(kind PointerKind) int {
	return in.canvas.Len(kind) + in.window.Len(kind)
}
