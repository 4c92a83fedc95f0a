package advdrag

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BoundsKind distinguishes the forms a BoundsSpec can take.
type BoundsKind uint8

const (
	BoundsNone   BoundsKind = iota // unconstrained
	BoundsRect                     // explicit offset limits
	BoundsParent                   // stay inside the offset parent's content box
)

// BoundsSpec describes where a drag may move the element. For BoundsRect the
// four sides are limits on the element's translation: Left and Top are the
// minimums, Right and Bottom the maximums. Use math.Inf for an open side.
type BoundsSpec struct {
	Kind                     BoundsKind
	Left, Right, Top, Bottom float64
}

// NoBounds returns a BoundsSpec that leaves movement unconstrained.
func NoBounds() BoundsSpec { return BoundsSpec{} }

// RectBounds returns an explicit-rectangle spec.
func RectBounds(left, right, top, bottom float64) BoundsSpec {
	return BoundsSpec{Kind: BoundsRect, Left: left, Right: right, Top: top, Bottom: bottom}
}

// ParentBounds returns a BoundsSpec that keeps the element inside its offset parent.
func ParentBounds() BoundsSpec { return BoundsSpec{Kind: BoundsParent} }

// Enabled reports whether b constrains movement at all.
func (b BoundsSpec) Enabled() bool { return b.Kind != BoundsNone }

// String formats b in the form accepted by ParseBounds.
func (b BoundsSpec) String() string {
	switch b.Kind {
	case BoundsParent:
		return "parent"
	case BoundsRect:
		f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
		return f(b.Left) + "," + f(b.Right) + "," + f(b.Top) + "," + f(b.Bottom)
	default:
		return "none"
	}
}

// ParseBounds accepts "", "none" or "false" (unconstrained), "parent", or
// four comma-separated numbers "left,right,top,bottom".
func ParseBounds(s string) (BoundsSpec, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "none", "false":
		return NoBounds(), nil
	case "parent":
		return ParentBounds(), nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return NoBounds(), fmt.Errorf("parse bounds %q: want left,right,top,bottom", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return NoBounds(), fmt.Errorf("parse bounds %q: %w", s, err)
		}
		v[i] = f
	}
	return RectBounds(v[0], v[1], v[2], v[3]), nil
}

// Limits is a resolved, concrete position range.
type Limits struct {
	MinX, MaxX, MinY, MaxY float64
}

// Unbounded returns limits spanning the whole plane.
func Unbounded() Limits {
	return Limits{
		MinX: math.Inf(-1), MaxX: math.Inf(1),
		MinY: math.Inf(-1), MaxY: math.Inf(1),
	}
}

// pinned returns limits that only admit (x, y).
func pinned(x, y float64) Limits {
	return Limits{MinX: x, MaxX: x, MinY: y, MaxY: y}
}

// valid reports whether no limit is NaN.
func (l Limits) valid() bool {
	return !math.IsNaN(l.MinX) && !math.IsNaN(l.MaxX) &&
		!math.IsNaN(l.MinY) && !math.IsNaN(l.MaxY)
}

// Clamp moves (x, y) into range, one axis at a time. The maximum is applied
// before the minimum, so the minimum wins when the range is inverted.
func (l Limits) Clamp(x, y float64) (float64, float64) {
	x = math.Max(math.Min(x, l.MaxX), l.MinX)
	y = math.Max(math.Min(y, l.MaxY), l.MinY)
	return x, y
}

// ResolveBounds computes the allowed translation range for an element laid
// out as node inside the offset parent described by parent.
//
// For BoundsParent the element's margin box is kept inside the parent's
// content box, accounting for the element's current size.
func ResolveBounds(spec BoundsSpec, node, parent Box) Limits {
	switch spec.Kind {
	case BoundsRect:
		return Limits{MinX: spec.Left, MaxX: spec.Right, MinY: spec.Top, MaxY: spec.Bottom}
	case BoundsParent:
		return Limits{
			MinX: parent.Padding.Left + node.Margin.Left - node.Left,
			MaxX: parent.Width - parent.Padding.Right - node.Margin.Right - node.Width - node.Left,
			MinY: parent.Padding.Top + node.Margin.Top - node.Top,
			MaxY: parent.Height - parent.Padding.Bottom - node.Margin.Bottom - node.Height - node.Top,
		}
	default:
		return Unbounded()
	}
}
