package advdrag

// Phase is the interaction a Draggable is currently in.
type Phase uint8

const (
	PhaseIdle     Phase = iota // between gestures
	PhaseDragging              // translating the element
	PhaseRotating              // turning the element by its handle
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseRotating:
		return "rotating"
	default:
		return "idle"
	}
}

// State is the complete interaction state of a Draggable.
//
// X and Y change only during a drag or when the owner supplies a new
// controlled position. SlackX and SlackY are the clamped-away part of the
// pointer's travel and are zero outside a bounded drag. Angle, in degrees
// within (-180, 180], changes only while rotating. Dragged and Rotated latch
// once set.
type State struct {
	X, Y           float64
	SlackX, SlackY float64
	Angle          float64

	Dragging bool
	Dragged  bool
	Rotating bool
	Rotated  bool
}

// Phase reports which interaction is active.
func (s State) Phase() Phase {
	switch {
	case s.Dragging:
		return PhaseDragging
	case s.Rotating:
		return PhaseRotating
	default:
		return PhaseIdle
	}
}

// Position returns the internal position.
func (s State) Position() Vec2 {
	return Vec2{X: s.X, Y: s.Y}
}

// Event is an input to the Draggable's transition function.
type Event interface {
	eventName() string
}

// DragStartEvent begins a drag gesture on the element body.
type DragStartEvent struct {
	Pointer PointerEvent
	Core    CoreData
}

// DragEvent is one pointer movement step of a drag gesture.
type DragEvent struct {
	Pointer PointerEvent
	Core    CoreData
}

// DragStopEvent ends a drag gesture.
type DragStopEvent struct {
	Pointer PointerEvent
	Core    CoreData
}

// RotateStartEvent begins a rotate gesture on the handle.
type RotateStartEvent struct {
	Pointer PointerEvent
}

// RotateEvent is one pointer movement of a rotate gesture. The pointer
// coordinates are page coordinates.
type RotateEvent struct {
	Pointer PointerEvent
}

// RotateStopEvent ends a rotate gesture.
type RotateStopEvent struct {
	Pointer PointerEvent
}

// PositionEvent carries the owner's controlled position. A nil Position
// releases control.
type PositionEvent struct {
	Position *Vec2
}

// AngleEvent carries a new default angle from the owner.
type AngleEvent struct {
	Angle float64
}

func (DragStartEvent) eventName() string   { return "drag-start" }
func (DragEvent) eventName() string        { return "drag" }
func (DragStopEvent) eventName() string    { return "drag-stop" }
func (RotateStartEvent) eventName() string { return "rotate-start" }
func (RotateEvent) eventName() string      { return "rotate" }
func (RotateStopEvent) eventName() string  { return "rotate-stop" }
func (PositionEvent) eventName() string    { return "position" }
func (AngleEvent) eventName() string       { return "angle" }
