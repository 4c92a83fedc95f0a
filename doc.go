// Package advdrag moves and rotates a single element under pointer control.
//
// A [Draggable] is the interaction state machine for one element. It owns the
// element's position, the slack that lets a bounded drag re-enter its range
// only after the pointer comes back, the rotation angle, and the dragging and
// rotating flags. Owners observe it through callbacks and subscribers and
// steer it by supplying a controlled position or a default angle.
//
// # Quick start
//
// The simplest way to drive a Draggable is a [Surface], which owns a pointer
// session, hit-tests the element body and its rotate handle, and writes the
// rendered transform back to the element [Node]:
//
//	parent := advdrag.NewNode("page", 0, 0, 800, 600)
//	box := advdrag.NewNode("box", 100, 100, 120, 80)
//	s := advdrag.NewSurface(parent, box, advdrag.Config{
//		Axis:   advdrag.AxisBoth,
//		Bounds: advdrag.ParentBounds(),
//	})
//
//	// each frame
//	s.Feed(0, mouseX, mouseY, pressed, advdrag.MouseButtonLeft, 0)
//	s.Update(1.0 / 60)
//	out := s.Render()
//
// Hosts for Ebitengine and terminals live in the ebitenhost and termhost
// packages; snapshot renders a Surface to PNG.
//
// # Controlled and uncontrolled
//
// When [Config.Position] is nil the element is uncontrolled and keeps the
// position produced by the last drag. When set, the owner controls it: the
// internal position follows the pointer during a drag and snaps back to
// the owner's value when the drag stops, unless the owner moved it from its
// OnStop callback via [Draggable.SetPosition].
//
// # Rotation
//
// The rotate handle sits above the element's top edge. Dragging it turns the
// element so its top faces the pointer; angles within two degrees of a right
// angle snap onto it. Angles are degrees in (-180, 180], clockwise from
// straight up.
//
// # Logging
//
// advdrag is silent by default. Call [SetLogger] with a [log/slog] logger to
// see gesture steps at debug level and misconfiguration warnings.
package advdrag
