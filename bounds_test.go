package advdrag

import (
	"math"
	"testing"
)

func TestResolveBoundsNone(t *testing.T) {
	lim := ResolveBounds(NoBounds(), Box{}, Box{})
	if !math.IsInf(lim.MinX, -1) || !math.IsInf(lim.MaxX, 1) ||
		!math.IsInf(lim.MinY, -1) || !math.IsInf(lim.MaxY, 1) {
		t.Errorf("ResolveBounds(none) = %+v, want unbounded", lim)
	}
	x, y := lim.Clamp(-1e12, 1e12)
	if x != -1e12 || y != 1e12 {
		t.Errorf("Clamp unbounded = (%v, %v)", x, y)
	}
}

func TestResolveBoundsRect(t *testing.T) {
	lim := ResolveBounds(RectBounds(-10, 20, 0, 40), Box{}, Box{})
	want := Limits{MinX: -10, MaxX: 20, MinY: 0, MaxY: 40}
	if lim != want {
		t.Errorf("ResolveBounds(rect) = %+v, want %+v", lim, want)
	}
}

func TestResolveBoundsParent(t *testing.T) {
	parent := Box{Width: 500, Height: 400, Padding: Insets{Left: 10, Right: 10, Top: 10, Bottom: 10}}
	node := Box{Left: 20, Top: 30, Width: 100, Height: 50, Margin: Insets{Left: 5, Right: 5, Top: 5, Bottom: 5}}

	lim := ResolveBounds(ParentBounds(), node, parent)
	assertNear(t, "MinX", lim.MinX, -5)
	assertNear(t, "MaxX", lim.MaxX, 365)
	assertNear(t, "MinY", lim.MinY, -15)
	assertNear(t, "MaxY", lim.MaxY, 305)
}

func TestResolveBoundsParentTooSmall(t *testing.T) {
	parent := Box{Width: 50, Height: 50}
	node := Box{Width: 100, Height: 100}
	lim := ResolveBounds(ParentBounds(), node, parent)
	// The range is inverted; clamping settles on the minimum.
	x, y := lim.Clamp(30, -30)
	if x != 0 || y != 0 {
		t.Errorf("Clamp = (%v, %v), want (0, 0)", x, y)
	}
}

func TestLimitsClamp(t *testing.T) {
	lim := Limits{MinX: 0, MaxX: 100, MinY: -50, MaxY: 50}
	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{50, 0, 50, 0},
		{-10, 0, 0, 0},
		{150, 0, 100, 0},
		{50, -80, 50, -50},
		{50, 80, 50, 50},
		{200, 200, 100, 50},
	}
	for _, tt := range tests {
		x, y := lim.Clamp(tt.x, tt.y)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Clamp(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestLimitsClampInverted(t *testing.T) {
	lim := Limits{MinX: 10, MaxX: 0, MinY: 0, MaxY: 0}
	x, _ := lim.Clamp(5, 0)
	if x != 10 {
		t.Errorf("Clamp inverted = %v, want min 10", x)
	}
}

func TestLimitsValid(t *testing.T) {
	if !Unbounded().valid() {
		t.Error("Unbounded should be valid")
	}
	if (Limits{MinX: math.NaN()}).valid() {
		t.Error("NaN limit should be invalid")
	}
	p := pinned(3, 4)
	if x, y := p.Clamp(100, -100); x != 3 || y != 4 {
		t.Errorf("pinned Clamp = (%v, %v), want (3, 4)", x, y)
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		in      string
		want    BoundsSpec
		wantErr bool
	}{
		{"", NoBounds(), false},
		{"none", NoBounds(), false},
		{"false", NoBounds(), false},
		{"parent", ParentBounds(), false},
		{" parent ", ParentBounds(), false},
		{"0,100,-50,50", RectBounds(0, 100, -50, 50), false},
		{"0, 100, -50, 50", RectBounds(0, 100, -50, 50), false},
		{"-Inf,0,0,+Inf", RectBounds(math.Inf(-1), 0, 0, math.Inf(1)), false},
		{"1,2,3", BoundsSpec{}, true},
		{"a,b,c,d", BoundsSpec{}, true},
		{"window", BoundsSpec{}, true},
	}
	for _, tt := range tests {
		got, err := ParseBounds(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBounds(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBounds(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBounds(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestBoundsSpecString(t *testing.T) {
	tests := []struct {
		spec BoundsSpec
		want string
	}{
		{NoBounds(), "none"},
		{ParentBounds(), "parent"},
		{RectBounds(0, 100.5, -50, 50), "0,100.5,-50,50"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		back, err := ParseBounds(tt.want)
		if err != nil || back != tt.spec {
			t.Errorf("ParseBounds(%q) = %+v, %v", tt.want, back, err)
		}
	}
}

func TestBoundsEnabled(t *testing.T) {
	if NoBounds().Enabled() {
		t.Error("NoBounds should not be enabled")
	}
	if !ParentBounds().Enabled() || !RectBounds(0, 0, 0, 0).Enabled() {
		t.Error("parent and rect bounds should be enabled")
	}
}
