package advdrag

// DragHandler observes a drag gesture step. Returning Veto discards the step.
type DragHandler func(ev PointerEvent, data DragData) Outcome

// RotateHandler observes the start or end of a rotate gesture.
type RotateHandler func(ev PointerEvent, data RotateData)

// CoreConfig configures the pointer drag session shared by the element body
// and the rotate handle, together with the drag callbacks it reports to.
type CoreConfig struct {
	// Disabled ignores all presses and hides the rotate handle.
	Disabled bool
	// AllowAnyClick lets any mouse button start a gesture. By default only
	// the left button does.
	AllowAnyClick bool
	// DeadZone is the distance in pixels the pointer must travel before a
	// press becomes a gesture. Zero starts the gesture on press.
	DeadZone float64
	// Grid, when both components are positive, snaps pointer movement to
	// multiples of the cell size.
	Grid [2]float64

	OnStart DragHandler
	OnDrag  DragHandler
	OnStop  DragHandler
}

// Config configures a Draggable. The zero value is usable: movement on both
// axes, no bounds, origin start, scale 1.
type Config struct {
	CoreConfig

	Axis   Axis
	Bounds BoundsSpec

	// DefaultPosition is the starting position when uncontrolled, and the
	// fallback for axes that may not move.
	DefaultPosition Vec2
	// Position, when non-nil, puts the element under owner control.
	Position *Vec2

	DefaultAngle float64
	// Scale only affects rendering of the rotate handle.
	Scale float64

	OnRotateStart RotateHandler
	OnRotateStop  RotateHandler
}

// withDefaults returns a copy of c with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Position != nil {
		p := *c.Position
		c.Position = &p
	}
	return c
}

// gridEnabled reports whether pointer movement snaps to a grid.
func (c CoreConfig) gridEnabled() bool {
	return c.Grid[0] > 0 && c.Grid[1] > 0
}
