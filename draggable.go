package advdrag

import "log/slog"

// DragData is the payload passed to drag callbacks. X and Y are the position
// the step would produce; LastX and LastY the position before it.
type DragData struct {
	Node           Element
	X, Y           float64
	DeltaX, DeltaY float64
	LastX, LastY   float64
}

// RotateData is the payload passed to rotate callbacks.
type RotateData struct {
	Angle float64
}

type stateHandler struct {
	id uint32
	fn func(State)
}

// CallbackHandle allows removing a registered state subscriber.
type CallbackHandle struct {
	id uint32
	d  *Draggable
}

// Remove unregisters the subscriber so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.subscribers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = stateHandler{}
			h.d.subscribers = s[:len(s)-1]
			return
		}
	}
}

// Draggable is the interaction state machine for one element. It owns the
// element's position, slack, angle and interaction flags; owners observe them
// through callbacks and subscribers and steer them only by supplying a
// controlled position or default angle.
//
// A Draggable is not safe for concurrent use. All events for one element
// must be delivered from the same goroutine, in start, move*, stop order.
type Draggable struct {
	cfg   Config
	state State

	element Element
	kind    ElementKind
	mounted bool

	subscribers []stateHandler
	nextID      uint32

	// depth counts transitions in progress. Owner events dispatched from
	// inside a callback wait in deferred until the outer state is committed.
	depth    int
	deferred []Event
}

// New creates a Draggable from cfg. When cfg.Position is set without OnDrag
// or OnStop the element cannot be dragged; a warning is logged.
func New(cfg Config) *Draggable {
	cfg = cfg.withDefaults()
	d := &Draggable{cfg: cfg}
	d.state.X, d.state.Y = cfg.DefaultPosition.X, cfg.DefaultPosition.Y
	if cfg.Position != nil {
		d.state.X, d.state.Y = cfg.Position.X, cfg.Position.Y
	}
	d.state.Angle = NormalizeAngle(cfg.DefaultAngle)
	if d.frozen() {
		Logger().Warn("advdrag: a controlled position was set without OnDrag or OnStop handlers; " +
			"the element cannot be dragged until handlers adjust the position")
	}
	return d
}

// State returns a copy of the current state.
func (d *Draggable) State() State { return d.state }

// Config returns a copy of the effective configuration.
func (d *Draggable) Config() Config { return d.cfg }

// Kind returns the element kind detected at mount.
func (d *Draggable) Kind() ElementKind { return d.kind }

// Element returns the mounted element, or nil.
func (d *Draggable) Element() Element { return d.element }

// Controlled reports whether the owner supplies the position.
func (d *Draggable) Controlled() bool { return d.cfg.Position != nil }

// SetDisabled turns the rotate handle and pointer input off or on.
func (d *Draggable) SetDisabled(disabled bool) {
	d.cfg.Disabled = disabled
}

// frozen reports the misconfiguration where a controlled element has no way
// to report movement back to its owner.
func (d *Draggable) frozen() bool {
	return d.cfg.Position != nil && d.cfg.OnDrag == nil && d.cfg.OnStop == nil
}

// Subscribe registers fn to run after every state change.
func (d *Draggable) Subscribe(fn func(State)) CallbackHandle {
	d.nextID++
	id := d.nextID
	d.subscribers = append(d.subscribers, stateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, d: d}
}

func (d *Draggable) notify() {
	for _, h := range d.subscribers {
		h.fn(d.state)
	}
}

// Mount attaches the element. The element kind is detected on the first
// mount only; later mounts swap the element but keep the cached kind.
func (d *Draggable) Mount(el Element) {
	d.element = el
	if !d.mounted {
		d.kind = detectKind(el)
		d.mounted = true
	}
}

// Unmount detaches the element and ends any gesture without callbacks.
func (d *Draggable) Unmount() {
	d.element = nil
	if d.state.Dragging || d.state.Rotating {
		d.state.Dragging = false
		d.state.Rotating = false
		d.state.SlackX, d.state.SlackY = 0, 0
		d.notify()
	}
}

// Dispatch applies ev to the current state, records owner-supplied values,
// and notifies subscribers when the state changed.
//
// A PositionEvent or AngleEvent dispatched from an owner callback is applied
// after the transition that invoked the callback, so the owner's value wins
// over the step that was in flight.
func (d *Draggable) Dispatch(ev Event) Outcome {
	if d.depth > 0 {
		switch ev.(type) {
		case PositionEvent, AngleEvent:
			d.deferred = append(d.deferred, ev)
			return Proceed
		}
	}
	d.depth++
	next, out := d.Transition(d.state, ev)
	d.depth--

	switch e := ev.(type) {
	case PositionEvent:
		if e.Position != nil {
			p := *e.Position
			d.cfg.Position = &p
		} else {
			d.cfg.Position = nil
		}
	case AngleEvent:
		d.cfg.DefaultAngle = e.Angle
	}
	if next != d.state {
		d.state = next
		d.notify()
	}
	d.flushDeferred()
	return out
}

// flushDeferred applies owner events queued during a transition, in order.
// The owner answered a step it has already seen, so its value is taken as is
// rather than compared with the previous one.
func (d *Draggable) flushDeferred() {
	for d.depth == 0 && len(d.deferred) > 0 {
		ev := d.deferred[0]
		d.deferred = d.deferred[1:]
		next := d.state
		switch e := ev.(type) {
		case PositionEvent:
			if e.Position == nil {
				d.cfg.Position = nil
				break
			}
			p := *e.Position
			d.cfg.Position = &p
			next.X, next.Y = p.X, p.Y
		case AngleEvent:
			d.cfg.DefaultAngle = e.Angle
			next.Angle = NormalizeAngle(e.Angle)
		}
		if next != d.state {
			d.state = next
			d.notify()
		}
	}
}

// Transition returns the state that ev produces from st. Owner callbacks are
// invoked as part of the transition; a Veto outcome means st is returned
// unchanged. Transition does not modify the Draggable.
func (d *Draggable) Transition(st State, ev Event) (State, Outcome) {
	switch e := ev.(type) {
	case DragStartEvent:
		return d.dragStart(st, e.Pointer, e.Core)
	case DragEvent:
		return d.drag(st, e.Pointer, e.Core)
	case DragStopEvent:
		return d.dragStop(st, e.Pointer, e.Core)
	case RotateStartEvent:
		return d.rotateStart(st, e.Pointer)
	case RotateEvent:
		return d.rotate(st, e.Pointer)
	case RotateStopEvent:
		return d.rotateStop(st, e.Pointer)
	case PositionEvent:
		prev := d.cfg.Position
		if e.Position != nil && (prev == nil || *e.Position != *prev) {
			st.X, st.Y = e.Position.X, e.Position.Y
		}
		return st, Proceed
	case AngleEvent:
		if e.Angle != d.cfg.DefaultAngle {
			st.Angle = NormalizeAngle(e.Angle)
		}
		return st, Proceed
	}
	return st, Veto
}

// HandleDragStart begins a drag. It returns Veto when the drag was refused.
func (d *Draggable) HandleDragStart(ev PointerEvent, core CoreData) Outcome {
	return d.Dispatch(DragStartEvent{Pointer: ev, Core: core})
}

// HandleDrag applies one drag step.
func (d *Draggable) HandleDrag(ev PointerEvent, core CoreData) Outcome {
	return d.Dispatch(DragEvent{Pointer: ev, Core: core})
}

// HandleDragStop ends a drag. It returns Veto when the drag continues.
func (d *Draggable) HandleDragStop(ev PointerEvent, core CoreData) Outcome {
	return d.Dispatch(DragStopEvent{Pointer: ev, Core: core})
}

// HandleRotateStart begins a rotate gesture.
func (d *Draggable) HandleRotateStart(ev PointerEvent) Outcome {
	return d.Dispatch(RotateStartEvent{Pointer: ev})
}

// HandleRotate turns the element towards the pointer.
func (d *Draggable) HandleRotate(ev PointerEvent) Outcome {
	return d.Dispatch(RotateEvent{Pointer: ev})
}

// HandleRotateStop ends a rotate gesture. A stop outside a rotation is
// ignored and returns Veto.
func (d *Draggable) HandleRotateStop(ev PointerEvent) Outcome {
	return d.Dispatch(RotateStopEvent{Pointer: ev})
}

// SetPosition supplies the owner's controlled position. A value differing
// from the previous one overrides the internal position immediately, even
// mid-drag. nil returns the element to uncontrolled mode.
func (d *Draggable) SetPosition(p *Vec2) {
	d.Dispatch(PositionEvent{Position: p})
}

// SetDefaultAngle resets the angle when the owner's default angle changes.
func (d *Draggable) SetDefaultAngle(angle float64) {
	d.Dispatch(AngleEvent{Angle: angle})
}

func callDrag(fn DragHandler, ev PointerEvent, data DragData) Outcome {
	if fn == nil {
		return Proceed
	}
	return fn(ev, data)
}

func (d *Draggable) dragStart(st State, ev PointerEvent, core CoreData) (State, Outcome) {
	if st.Dragging {
		return st, Proceed
	}
	if st.Rotating || d.frozen() {
		return st, Veto
	}
	Logger().Debug("advdrag: drag start", slog.Float64("x", st.X), slog.Float64("y", st.Y))

	data := DragData{Node: d.element, X: st.X, Y: st.Y, LastX: st.X, LastY: st.Y}
	if callDrag(d.cfg.OnStart, ev, data) == Veto {
		Logger().Debug("advdrag: drag start vetoed")
		return st, Veto
	}
	st.Dragging = true
	st.Dragged = true
	st.SlackX, st.SlackY = 0, 0
	return st, Proceed
}

func (d *Draggable) drag(st State, ev PointerEvent, core CoreData) (State, Outcome) {
	if !st.Dragging {
		return st, Veto
	}
	axis := d.cfg.Axis
	next := st
	data := DragData{
		Node:  d.element,
		X:     st.X + core.DeltaX,
		Y:     st.Y + core.DeltaY,
		LastX: st.X,
		LastY: st.Y,
	}
	if !axis.CanDragX() {
		data.X = st.X
	}
	if !axis.CanDragY() {
		data.Y = st.Y
	}

	if d.cfg.Bounds.Enabled() {
		lim := d.limits(st)
		x, y := lim.Clamp(data.X+st.SlackX, data.Y+st.SlackY)
		if axis.CanDragX() {
			next.SlackX = st.SlackX + data.X - x
			data.X = x
		}
		if axis.CanDragY() {
			next.SlackY = st.SlackY + data.Y - y
			data.Y = y
		}
	}
	data.DeltaX = data.X - st.X
	data.DeltaY = data.Y - st.Y
	next.X, next.Y = data.X, data.Y

	Logger().Debug("advdrag: drag",
		slog.Float64("x", data.X), slog.Float64("y", data.Y),
		slog.Float64("slackX", next.SlackX), slog.Float64("slackY", next.SlackY))

	if callDrag(d.cfg.OnDrag, ev, data) == Veto {
		Logger().Debug("advdrag: drag step vetoed")
		return st, Veto
	}
	return next, Proceed
}

func (d *Draggable) dragStop(st State, ev PointerEvent, core CoreData) (State, Outcome) {
	if !st.Dragging {
		return st, Veto
	}
	data := DragData{Node: d.element, X: st.X, Y: st.Y, LastX: st.X, LastY: st.Y}
	if callDrag(d.cfg.OnStop, ev, data) == Veto {
		Logger().Debug("advdrag: drag stop vetoed")
		return st, Veto
	}
	Logger().Debug("advdrag: drag stop", slog.Float64("x", st.X), slog.Float64("y", st.Y))

	st.Dragging = false
	st.SlackX, st.SlackY = 0, 0
	if p := d.cfg.Position; p != nil {
		st.X, st.Y = p.X, p.Y
	}
	return st, Proceed
}

// limits resolves the configured bounds against the element's current
// layout. Without a usable layout the element is held where it is.
func (d *Draggable) limits(st State) Limits {
	var lim Limits
	switch d.cfg.Bounds.Kind {
	case BoundsParent:
		if d.element == nil {
			return pinned(st.X, st.Y)
		}
		node, parent, ok := d.element.OffsetBox()
		if !ok {
			return pinned(st.X, st.Y)
		}
		lim = ResolveBounds(d.cfg.Bounds, node, parent)
	default:
		lim = ResolveBounds(d.cfg.Bounds, Box{}, Box{})
	}
	if !lim.valid() {
		return pinned(st.X, st.Y)
	}
	return lim
}

func (d *Draggable) rotateStart(st State, ev PointerEvent) (State, Outcome) {
	if st.Dragging || d.cfg.Disabled {
		return st, Veto
	}
	Logger().Debug("advdrag: rotate start", slog.Float64("angle", st.Angle))
	if fn := d.cfg.OnRotateStart; fn != nil {
		fn(ev, RotateData{Angle: st.Angle})
	}
	st.Rotating = true
	st.Rotated = true
	return st, Proceed
}

func (d *Draggable) rotate(st State, ev PointerEvent) (State, Outcome) {
	if !st.Rotating {
		return st, Veto
	}
	pivot, ok := d.pivot()
	if !ok || (pivot.X == ev.X && pivot.Y == ev.Y) {
		return st, Proceed
	}
	st.Angle = resolveAngle(pivot, ev.X, ev.Y)
	Logger().Debug("advdrag: rotate", slog.Float64("angle", st.Angle))
	return st, Proceed
}

func (d *Draggable) rotateStop(st State, ev PointerEvent) (State, Outcome) {
	if !st.Rotating {
		return st, Veto
	}
	Logger().Debug("advdrag: rotate stop", slog.Float64("angle", st.Angle))
	if fn := d.cfg.OnRotateStop; fn != nil {
		fn(ev, RotateData{Angle: st.Angle})
	}
	st.Rotating = false
	return st, Proceed
}

// pivot returns the centre of the element's current bounding box in page
// coordinates.
func (d *Draggable) pivot() (Vec2, bool) {
	if d.element == nil {
		return Vec2{}, false
	}
	r := d.element.BoundingRect()
	if r.Empty() {
		return Vec2{}, false
	}
	return r.Center(), true
}
