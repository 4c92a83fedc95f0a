package advdrag

const (
	handleBaseSize = 16.0 // rotate handle diameter at scale 1

	zIndexActive = "99999"
	zIndexAuto   = "auto"
)

// HandleStyle describes how the rotate handle is drawn.
type HandleStyle struct {
	Visible bool
	// Size is the handle diameter, shrunk by the configured scale so it stays
	// the same on screen when the element is zoomed.
	Size float64
	// Alpha is the handle opacity in [0, 1].
	Alpha float64
}

// RenderOutput is everything a host needs to draw the element.
type RenderOutput struct {
	Kind      ElementKind
	Transform Transform

	// Style holds CSS properties. For HTML elements it carries the transform;
	// for both kinds it carries the stacking order.
	Style map[string]string
	// SVGTransform is the transform attribute for SVG elements.
	SVGTransform string

	Dragging bool
	Dragged  bool
	Rotating bool
	Rotated  bool

	Handle HandleStyle
}

// Render selects the position to draw and builds the transform output for
// the detected element kind.
//
// A controlled element at rest is drawn at the owner's position; during a
// drag, or when uncontrolled, the internal position is used. An axis that
// may not move always shows the owner's or default position.
func (d *Draggable) Render() RenderOutput {
	st := d.state
	controlled := d.cfg.Position != nil
	movable := !controlled || st.Dragging

	base := d.cfg.DefaultPosition
	if controlled {
		base = *d.cfg.Position
	}
	t := Transform{X: base.X, Y: base.Y, Angle: st.Angle}
	if movable && d.cfg.Axis.CanDragX() {
		t.X = st.X
	}
	if movable && d.cfg.Axis.CanDragY() {
		t.Y = st.Y
	}

	out := RenderOutput{
		Kind:      d.kind,
		Transform: t,
		Dragging:  st.Dragging,
		Dragged:   st.Dragged,
		Rotating:  st.Rotating,
		Rotated:   st.Rotated,
		Handle: HandleStyle{
			Visible: !d.cfg.Disabled,
			Size:    handleBaseSize / d.cfg.Scale,
		},
	}
	if out.Handle.Visible {
		out.Handle.Alpha = 1
	}

	zIndex := zIndexActive
	if d.cfg.Disabled {
		zIndex = zIndexAuto
	}
	if d.kind == ElementSVG {
		out.SVGTransform = SVGTransform(t)
		out.Style = map[string]string{"z-index": zIndex}
	} else {
		out.Style = CSSStyle(t)
		out.Style["z-index"] = zIndex
	}
	return out
}
