package advdrag

// HitShape is a hit area in an element's local coordinates. Surface tests
// pointers against the element body and the rotate handle with it.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned box. Edges count as inside.
type HitRect struct {
	X, Y, Width, Height float64
}

func (r HitRect) Contains(x, y float64) bool {
	if x < r.X || y < r.Y {
		return false
	}
	return x-r.X <= r.Width && y-r.Y <= r.Height
}

// HitCircle is a disc, used for the rotate handle.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

func (c HitCircle) Contains(x, y float64) bool {
	dx, dy := x-c.CenterX, y-c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex outline for bodies that are not boxes. Vertices may
// wind either way; fewer than three contain nothing.
type HitPolygon struct {
	Vertices []Vec2
}

func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	// Inside a convex outline the point sits on the same side of every edge.
	side := 0
	prev := p.Vertices[n-1]
	for _, v := range p.Vertices {
		cross := (v.X-prev.X)*(y-prev.Y) - (v.Y-prev.Y)*(x-prev.X)
		prev = v
		s := 0
		switch {
		case cross > 0:
			s = 1
		case cross < 0:
			s = -1
		}
		if s == 0 {
			continue
		}
		if side != 0 && s != side {
			return false
		}
		side = s
	}
	return true
}
