package advdrag

import "testing"

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left edge", 10, 20, true},
		{"bottom-right edge", 110, 70, true},
		{"left", 5, 40, false},
		{"below", 50, 80, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: -16, Radius: 8}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, -16, true},
		{"on edge", 58, -16, true},
		{"outside", 59, -16, false},
		{"diagonal outside", 56, -10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	diamond := HitPolygon{Vertices: []Vec2{
		{X: 50, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 0, Y: 50},
	}}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"near vertex", 50, 2, true},
		{"corner of bounding box", 5, 5, false},
		{"far", 200, 200, false},
		{"on edge", 75, 25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diamond.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonDegenerate(t *testing.T) {
	line := HitPolygon{Vertices: []Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}}}
	if line.Contains(5, 5) {
		t.Error("polygon with fewer than 3 points should contain nothing")
	}
}

func TestHitPolygonWinding(t *testing.T) {
	cw := []Vec2{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 20}, {X: 0, Y: 20}}
	ccw := []Vec2{cw[3], cw[2], cw[1], cw[0]}
	for _, pts := range [][]Vec2{cw, ccw} {
		p := HitPolygon{Vertices: pts}
		if !p.Contains(20, 10) {
			t.Errorf("%v: centre should hit", pts)
		}
		if p.Contains(41, 10) {
			t.Errorf("%v: point right of the outline should miss", pts)
		}
	}
}
