package advdrag

import "fmt"

// CanDragX reports whether horizontal movement is permitted.
func (a Axis) CanDragX() bool {
	return a == AxisBoth || a == AxisX
}

// CanDragY reports whether vertical movement is permitted.
func (a Axis) CanDragY() bool {
	return a == AxisBoth || a == AxisY
}

// String returns the option name of the axis mode.
func (a Axis) String() string {
	switch a {
	case AxisBoth:
		return "both"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisNone:
		return "none"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis converts "both", "x", "y" or "none" into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "both", "":
		return AxisBoth, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "none":
		return AxisNone, nil
	}
	return AxisBoth, fmt.Errorf("parse axis: unknown mode %q", s)
}
