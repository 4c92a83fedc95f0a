package advdrag

import (
	"math"
	"testing"
)

func TestComputeAngleAroundPivot(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"above", 100, 50, 0},
		{"right", 150, 100, 90},
		{"below", 100, 150, 180},
		{"left", 50, 100, -90},
		{"upper right", 150, 50, 45},
		{"lower right", 150, 150, 135},
		{"lower left", 50, 150, -135},
		{"upper left", 50, 50, -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAngle(100, 100, tt.px, tt.py)
			if got != tt.want {
				t.Errorf("ComputeAngle(100, 100, %v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestComputeAngleOnPivot(t *testing.T) {
	if got := ComputeAngle(40, 40, 40, 40); got != 0 {
		t.Errorf("ComputeAngle on pivot = %v, want 0", got)
	}
}

func TestComputeAngleFloorsToWholeDegree(t *testing.T) {
	// atan(1/3) ≈ 18.43°
	got := ComputeAngle(0, 0, 1, -3)
	if got != 18 {
		t.Errorf("ComputeAngle = %v, want 18", got)
	}
}

func TestComputeAngleRoundTrip(t *testing.T) {
	const radius = 1000.0
	for _, a := range []float64{0, 1, 30, 45, 60, 90, 120, 135, 180, -45, -90, -135, -179} {
		rad := a * math.Pi / 180
		px := 500 + radius*math.Sin(rad)
		py := 500 - radius*math.Cos(rad)
		if got := ComputeAngle(500, 500, px, py); got != a {
			t.Errorf("angle %v: ComputeAngle = %v", a, got)
		}
	}
}

func TestComputeAngleRange(t *testing.T) {
	for deg := 0; deg < 360; deg += 7 {
		rad := float64(deg) * math.Pi / 180
		got := ComputeAngle(0, 0, 37*math.Sin(rad), -37*math.Cos(rad))
		if got <= -180 || got > 180 {
			t.Errorf("deg %d: ComputeAngle = %v, out of (-180, 180]", deg, got)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{-180, 180},
		{190, -170},
		{270, -90},
		{-270, 90},
		{360, 0},
		{540, 180},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSnapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{89.5, 90},
		{90.5, 90},
		{-1.5, 0},
		{1.9, 0},
		{2, 2},
		{45, 45},
		{88, 90},
		{87.9, 87.9},
		{178.5, 180},
		{-88.5, -90},
		{-91, -90},
		{180, 180},
		{-135, -135},
	}
	for _, tt := range tests {
		got := SnapAngle(tt.in)
		if math.Abs(got-tt.want) > epsilon {
			t.Errorf("SnapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveAngleSnapsAndFolds(t *testing.T) {
	pivot := Vec2{X: 0, Y: 0}
	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		// 1° past straight down on the left snaps onto 180.
		{"near bottom", -math.Sin(math.Pi / 180), math.Cos(math.Pi / 180), 180},
		{"near right", 100, -1, 90},
		{"diagonal", 10, 10, 135},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAngle(pivot, tt.px*100, tt.py*100); got != tt.want {
				t.Errorf("resolveAngle = %v, want %v", got, tt.want)
			}
		})
	}
}
