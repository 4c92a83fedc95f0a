package advdrag

import "math"

const (
	snapZone = 2.0 // degrees either side of a right angle that snap onto it

	// floorSlack absorbs floating error before flooring so an exact integer
	// angle does not come out one degree short.
	floorSlack = 1e-9
)

// ComputeAngle returns the clockwise angle in degrees, in (-180, 180], of the
// pointer around the pivot, measured from straight up. The principal angle is
// floored to a whole degree. A pointer on the pivot yields 0.
func ComputeAngle(pivotX, pivotY, pointerX, pointerY float64) float64 {
	dx := math.Abs(pivotX - pointerX)
	dy := math.Abs(pivotY - pointerY)
	hyp := math.Sqrt(dx*dx + dy*dy)
	if hyp == 0 || math.IsNaN(hyp) {
		return 0
	}
	cos := math.Min(dy/hyp, 1)
	angle := math.Floor(math.Acos(cos)*180/math.Pi + floorSlack)

	right := pointerX > pivotX
	left := pointerX < pivotX
	below := pointerY > pivotY
	above := pointerY < pivotY
	level := pointerY == pivotY
	switch {
	case right && below:
		angle = 180 - angle
	case !right && !left && below:
		angle = 180
	case right && level:
		angle = 90
	case left && below:
		angle = 180 + angle
	case left && level:
		angle = 270
	case left && above:
		angle = 360 - angle
	}
	return NormalizeAngle(angle)
}

// NormalizeAngle reduces an angle in degrees into (-180, 180].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

// SnapAngle pulls an angle onto the nearest multiple of 90 when it lies within
// two degrees of it. Angles elsewhere are returned unchanged.
func SnapAngle(angle float64) float64 {
	mod := math.Mod(angle, 90)
	switch {
	case math.Abs(mod) < snapZone:
		return angle - mod
	case mod >= 90-snapZone && mod <= 90:
		return angle + 90 - mod
	case mod >= -90 && mod <= -90+snapZone:
		return angle - (90 + mod)
	}
	return angle
}

// resolveAngle is the full rotate-move pipeline: compute, snap, fold.
func resolveAngle(pivot Vec2, pointerX, pointerY float64) float64 {
	return NormalizeAngle(SnapAngle(ComputeAngle(pivot.X, pivot.Y, pointerX, pointerY)))
}
