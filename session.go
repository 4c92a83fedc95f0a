package advdrag

import (
	"log/slog"
	"math"
)

// maxPointers bounds the pointer slots: pointer 0 = mouse, 1-9 = touch.
const maxPointers = 10

// PointerEvent is the raw pointer sample that triggered a callback.
// X and Y are page coordinates.
type PointerEvent struct {
	X, Y      float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// CoreData is what the pointer session reports for one drag step: the
// pointer position, its previous position and the movement between them.
type CoreData struct {
	Node           Element
	X, Y           float64
	DeltaX, DeltaY float64
	LastX, LastY   float64
}

// Region identifies which interactive area of the element a gesture belongs to.
type Region uint8

const (
	RegionNone   Region = iota // outside the element
	RegionBody                 // the element itself: drags
	RegionHandle               // the rotate handle: rotates
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionBody:
		return "body"
	case RegionHandle:
		return "handle"
	default:
		return "none"
	}
}

type pointerState struct {
	down    bool
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
	region  Region
	started bool
	button  MouseButton // button captured at press time
}

// snapToGrid rounds a pending movement to whole grid cells.
func snapToGrid(grid [2]float64, dx, dy float64) (float64, float64) {
	return math.Round(dx/grid[0]) * grid[0], math.Round(dy/grid[1]) * grid[1]
}

// processPointer runs the pointer session state machine for one pointer
// sample and routes the resulting gesture steps to the Draggable.
func (s *Surface) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	cfg := s.d.Config()
	ev := PointerEvent{X: x, Y: y, Button: button, PointerID: pointerID, Modifiers: mods}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y

		// A drag whose stop was vetoed is still live; the new press resumes it.
		if s.lingering && s.owner == pointerID {
			return
		}
		ps.region = RegionNone
		ps.started = false
		if s.owner >= 0 || cfg.Disabled {
			return
		}
		if button != MouseButtonLeft && !cfg.AllowAnyClick {
			return
		}
		ps.region = s.hitTest(x, y)
		if ps.region == RegionNone {
			return
		}
		s.owner = pointerID
		if cfg.DeadZone <= 0 {
			s.begin(ps, ev)
		}

	case !pressed && ps.down:
		ps.down = false
		ev.Button = ps.button
		if ps.started {
			s.end(ps, ev)
		} else if ps.region != RegionNone {
			s.release(ps)
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ev.Button = ps.button
		if ps.region == RegionNone {
			ps.lastX, ps.lastY = x, y
			return
		}
		if !ps.started {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= cfg.DeadZone {
				return
			}
			s.begin(ps, PointerEvent{X: ps.startX, Y: ps.startY, Button: ps.button, PointerID: pointerID, Modifiers: mods})
		}
		if ps.started {
			s.move(ps, ev)
		}

	default:
		// Hover. Only a lingering drag follows the pointer.
		if s.lingering && s.owner == pointerID && (x != ps.lastX || y != ps.lastY) {
			s.move(ps, ev)
			return
		}
		ps.lastX, ps.lastY = x, y
	}
}

// begin starts the gesture for the pressed region. A refused start abandons
// the gesture until the pointer is released.
func (s *Surface) begin(ps *pointerState, ev PointerEvent) {
	var out Outcome
	switch ps.region {
	case RegionBody:
		core := CoreData{Node: s.el, X: ev.X, Y: ev.Y, LastX: ev.X, LastY: ev.Y}
		out = s.d.HandleDragStart(ev, core)
	case RegionHandle:
		out = s.d.HandleRotateStart(ev)
	}
	if out == Veto {
		Logger().Debug("advdrag: gesture refused", slog.String("region", ps.region.String()))
		s.release(ps)
		return
	}
	ps.started = true
}

// move reports one pointer movement to the active gesture.
func (s *Surface) move(ps *pointerState, ev PointerEvent) {
	switch ps.region {
	case RegionBody:
		dx := ev.X - ps.lastX
		dy := ev.Y - ps.lastY
		if grid := s.d.Config().Grid; s.d.Config().gridEnabled() {
			dx, dy = snapToGrid(grid, dx, dy)
			if dx == 0 && dy == 0 {
				return
			}
		}
		core := CoreData{
			Node:   s.el,
			X:      ps.lastX + dx,
			Y:      ps.lastY + dy,
			DeltaX: dx,
			DeltaY: dy,
			LastX:  ps.lastX,
			LastY:  ps.lastY,
		}
		ps.lastX, ps.lastY = core.X, core.Y
		s.d.HandleDrag(ev, core)
	case RegionHandle:
		ps.lastX, ps.lastY = ev.X, ev.Y
		s.d.HandleRotate(ev)
	}
}

// end finishes the active gesture. A vetoed drag stop keeps the drag alive:
// the pointer keeps moving the element until a later release is accepted.
func (s *Surface) end(ps *pointerState, ev PointerEvent) {
	switch ps.region {
	case RegionBody:
		core := CoreData{Node: s.el, X: ps.lastX, Y: ps.lastY, LastX: ps.lastX, LastY: ps.lastY}
		if s.d.HandleDragStop(ev, core) == Veto {
			s.lingering = true
			return
		}
	case RegionHandle:
		s.d.HandleRotateStop(ev)
	}
	s.release(ps)
}

// release clears the gesture owned by ps.
func (s *Surface) release(ps *pointerState) {
	ps.region = RegionNone
	ps.started = false
	s.lingering = false
	s.owner = -1
}
