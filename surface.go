package advdrag

import "github.com/tanema/gween/ease"

// handleFadeSeconds is how long the rotate handle takes to fade when the
// element is enabled or disabled.
const handleFadeSeconds = 0.2

// Surface binds a Draggable to a concrete element node inside a parent node
// and drives it from raw pointer samples. Hosts feed pointer input with Feed
// (or through the inject queue), call Update once per frame, and draw from
// Render.
type Surface struct {
	d      *Draggable
	parent *Node
	el     *Node

	// BodyShape overrides the element's rectangular hit area. It is in the
	// element's local coordinates.
	BodyShape HitShape

	pointers  [maxPointers]pointerState
	owner     int // pointer that owns the active gesture, or -1
	lingering bool

	injectQueue []queuedPointer
	testRunner  *TestRunner

	handleAlpha float64
	handleTween *TweenGroup
}

// NewSurface places el inside parent (if it is not attached yet), creates a
// Draggable from cfg and mounts it on el.
func NewSurface(parent, el *Node, cfg Config) *Surface {
	if el.Parent != parent {
		parent.AddChild(el)
	}
	s := &Surface{
		d:      New(cfg),
		parent: parent,
		el:     el,
		owner:  -1,
	}
	if !cfg.Disabled {
		s.handleAlpha = 1
	}
	s.d.Mount(el)
	s.d.Subscribe(func(State) { s.sync() })
	s.sync()
	return s
}

// Draggable returns the state machine driven by the surface.
func (s *Surface) Draggable() *Draggable { return s.d }

// Element returns the element node.
func (s *Surface) Element() *Node { return s.el }

// Parent returns the element's offset parent.
func (s *Surface) Parent() *Node { return s.parent }

// Render returns the current render output, including the handle fade.
func (s *Surface) Render() RenderOutput {
	out := s.d.Render()
	out.Handle.Alpha = s.handleAlpha
	out.Handle.Visible = out.Handle.Visible || s.handleAlpha > 0
	return out
}

// sync writes the rendered transform back to the element node so layout
// queries (pivot, hit testing) see what is drawn.
func (s *Surface) sync() {
	s.el.SetTransform(s.d.Render().Transform)
}

// SetPosition supplies the owner's controlled position. See
// Draggable.SetPosition.
func (s *Surface) SetPosition(p *Vec2) {
	s.d.SetPosition(p)
	s.sync()
}

// SetDefaultAngle forwards a new default angle. See Draggable.SetDefaultAngle.
func (s *Surface) SetDefaultAngle(angle float64) {
	s.d.SetDefaultAngle(angle)
	s.sync()
}

// SetDisabled enables or disables input and fades the rotate handle.
func (s *Surface) SetDisabled(disabled bool) {
	if s.d.Config().Disabled == disabled {
		return
	}
	s.d.SetDisabled(disabled)
	target := 1.0
	if disabled {
		target = 0
	}
	s.handleTween = TweenValue(&s.handleAlpha, target, handleFadeSeconds, ease.OutQuad)
}

// Feed processes one raw pointer sample from a host. pointerID 0 is the
// mouse; 1-9 are touch slots.
func (s *Surface) Feed(pointerID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	s.processPointer(pointerID, x, y, pressed, button, mods)
}

// Update advances one frame: the test runner steps, one injected pointer
// event is consumed, and the handle fade advances by dt seconds. It reports
// whether an injected event was consumed, in which case hosts should skip
// real pointer input this frame.
func (s *Surface) Update(dt float64) bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	injected := s.processInjectedInput()
	if s.handleTween != nil {
		s.handleTween.Update(float32(dt))
		if s.handleTween.Done {
			s.handleTween = nil
		}
	}
	return injected
}

// Unmount detaches the element from the Draggable and drops any gesture.
func (s *Surface) Unmount() {
	s.d.Unmount()
	for i := range s.pointers {
		s.pointers[i] = pointerState{}
	}
	s.owner = -1
	s.lingering = false
}

// HandleCenter returns the page-space centre of the rotate handle.
func (s *Surface) HandleCenter() Vec2 {
	size := s.d.Render().Handle.Size
	x, y := s.el.LocalToWorld(s.el.Width/2, -size)
	return Vec2{X: x, Y: y}
}

// hitTest finds the region under a page-space point. The rotate handle is
// tested first so it intercepts presses before the body.
func (s *Surface) hitTest(x, y float64) Region {
	lx, ly := s.el.WorldToLocal(x, y)
	out := s.d.Render()
	if out.Handle.Visible {
		size := out.Handle.Size
		handle := HitCircle{CenterX: s.el.Width / 2, CenterY: -size, Radius: size / 2}
		if handle.Contains(lx, ly) {
			return RegionHandle
		}
	}
	var body HitShape = HitRect{Width: s.el.Width, Height: s.el.Height}
	if s.BodyShape != nil {
		body = s.BodyShape
	}
	if body.Contains(lx, ly) {
		return RegionBody
	}
	return RegionNone
}
