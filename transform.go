package advdrag

import (
	"math"
	"strconv"
)

// Transform is the renderable placement of the element: a translation in
// pixels and a clockwise rotation in degrees about the element's centre.
type Transform struct {
	X, Y  float64
	Angle float64
}

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSSTransform returns the CSS transform value for t, e.g.
// "translate(10px,20px) rotate(45deg)".
func CSSTransform(t Transform) string {
	return "translate(" + formatNumber(t.X) + "px," + formatNumber(t.Y) + "px) rotate(" +
		formatNumber(t.Angle) + "deg)"
}

// CSSStyle returns the style properties that place an HTML element.
func CSSStyle(t Transform) map[string]string {
	return map[string]string{"transform": CSSTransform(t)}
}

// SVGTransform returns the value of an SVG transform attribute for t, e.g.
// "translate(10,20) rotate(45)".
func SVGTransform(t Transform) string {
	return "translate(" + formatNumber(t.X) + "," + formatNumber(t.Y) + ") rotate(" +
		formatNumber(t.Angle) + ")"
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] of t applied to a
// box of the given size: the box rotates about its centre, then translates.
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Rotate -> Translate(w/2 + X, h/2 + Y)
func (t Transform) Matrix(width, height float64) [6]float64 {
	sin, cos := math.Sincos(t.Angle * math.Pi / 180)
	px := width / 2
	py := height / 2
	return [6]float64{
		cos, sin, -sin, cos,
		-cos*px + sin*py + px + t.X,
		-sin*px - cos*py + py + t.Y,
	}
}

// translateAffine returns a pure translation matrix.
func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
