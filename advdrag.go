package advdrag

import "math"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has neither width nor height, or holds
// a non-finite coordinate.
func (r Rect) Empty() bool {
	if r.Width <= 0 && r.Height <= 0 {
		return true
	}
	for _, v := range [4]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// Insets holds per-side distances, used for padding and margin.
type Insets struct {
	Left, Right, Top, Bottom float64
}

// Box describes the layout box of an element relative to its offset parent.
// Left and Top are the offset of the border box from the parent's padding
// edge; Width and Height are the outer size. For an offset parent, Width
// and Height are the padding-box (client) size.
type Box struct {
	Left, Top     float64
	Width, Height float64
	Padding       Insets
	Margin        Insets
}

// Axis selects which axes a drag may move the element along.
type Axis uint8

const (
	AxisBoth Axis = iota // free movement (default)
	AxisX                // horizontal only
	AxisY                // vertical only
	AxisNone             // no movement; callbacks still fire
)

// ElementKind selects the transform output produced for an element.
type ElementKind uint8

const (
	ElementHTML ElementKind = iota // CSS transform style
	ElementSVG                     // SVG transform attribute
)

// String returns "html" or "svg".
func (k ElementKind) String() string {
	if k == ElementSVG {
		return "svg"
	}
	return "html"
}

// Outcome is returned by owner callbacks that may veto a transition.
type Outcome uint8

const (
	Proceed Outcome = iota // apply the transition
	Veto                   // discard the transition
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
